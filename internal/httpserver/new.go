package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"construction-visit-analysis/config"
	"construction-visit-analysis/pkg/gcalendar"
	"construction-visit-analysis/pkg/log"
	"construction-visit-analysis/pkg/openai"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	postgresDB *sql.DB
	llm        openai.IOpenAI
	calendar   *gcalendar.Client // nil disables calendar export
	timezone   string

	historyCfg  config.HistoryConfig
	scheduleCfg config.ScheduleConfig
	rateLimit   int
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB
	LLM        openai.IOpenAI
	Calendar   *gcalendar.Client
	Timezone   string

	History   config.HistoryConfig
	Schedule  config.ScheduleConfig
	RateLimit int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		postgresDB:  cfg.PostgresDB,
		llm:         cfg.LLM,
		calendar:    cfg.Calendar,
		timezone:    cfg.Timezone,
		historyCfg:  cfg.History,
		scheduleCfg: cfg.Schedule,
		rateLimit:   cfg.RateLimit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.llm == nil {
		return errors.New("llm client is required")
	}
	return nil
}

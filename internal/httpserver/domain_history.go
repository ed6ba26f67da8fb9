package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"construction-visit-analysis/internal/history"
	historyHTTP "construction-visit-analysis/internal/history/delivery/http"
	historyRepo "construction-visit-analysis/internal/history/repository/postgre"
	historyUC "construction-visit-analysis/internal/history/usecase"
	"construction-visit-analysis/internal/middleware"
)

// setupHistoryDomain wires the visit-history domain and registers its routes.
// The use case is returned so the schedule domain can gather context from it.
func (srv HTTPServer) setupHistoryDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) history.UseCase {
	repo := historyRepo.New(srv.postgresDB, srv.l)
	uc := historyUC.New(srv.l, repo, srv.historyCfg.CacheSize, srv.historyCfg.CacheTTL)
	h := historyHTTP.New(srv.l, uc)

	historyHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "History domain registered")
	return uc
}

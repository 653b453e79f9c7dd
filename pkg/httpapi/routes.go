// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package httpapi is the thin HTTP shell over the arena operations. All
// battle semantics live in pkg/arena; handlers only decode, dispatch and map
// the error taxonomy onto status codes.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AccelByte/extend-battle-engine/pkg/arena"
)

// NewRouter assembles the arena HTTP surface.
func NewRouter(a *arena.Arena, registry *prometheus.Registry) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(tracingMiddleware)

	h := &handlers{arena: a}

	r.Route("/v1", func(r chi.Router) {
		r.Post("/battles/wild", h.startWildBattle)
		r.Post("/battles/action", h.submitBattleAction)
		r.Post("/queue/join", h.joinRankedQueue)
		r.Post("/queue/leave", h.leaveRankedQueue)
		r.Post("/disconnect", h.disconnect)
		r.Get("/leaderboard", h.getLeaderboard)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return r
}

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewHandler(roomHandler *RoomHandler, suggestionHandler *SuggestionHandler, voteHandler *VoteHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/rooms", func(r chi.Router) {
			r.Post("/", roomHandler.CreateRoom)
			r.Get("/", roomHandler.GetRoom)

			r.Route("/{roomID}", func(r chi.Router) {
				r.Post("/lock", roomHandler.SetLock)
				r.Post("/reset", roomHandler.ResetRoom)

				r.Get("/suggestions", suggestionHandler.ListSuggestions)
				r.Post("/suggestions", suggestionHandler.AddSuggestion)

				r.Get("/votes", voteHandler.GetTally)
				r.Post("/votes", voteHandler.CastVote)
				r.Delete("/votes", voteHandler.RetractVote)
				r.Get("/leader", voteHandler.GetLeader)
			})
		})
	})

	return r
}

package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"carebot/carebot/config"
	"carebot/carebot/controllers"
	"carebot/carebot/middlewares"
	"carebot/carebot/utils/types"

	"github.com/go-chi/chi/v5"
)

// generic wrapper to reduce boilerplate
func handleJSON(handler func(r *http.Request) (any, int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, status, err := handler(r)
		if err != nil {
			http.Error(w, err.Error(), status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(res)
	}
}

func UserRoutes(ctrl *controllers.UserController, cfg config.Config) chi.Router {
	r := chi.NewRouter()

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		gr.Get("/profile", handleJSON(func(r *http.Request) (any, int, error) {
			id, ok := r.Context().Value(middlewares.UserIDKey).(int)
			if !ok {
				return nil, http.StatusUnauthorized, errors.New("unauthorized")
			}
			user, err := ctrl.GetProfile(r.Context(), id)
			if errors.Is(err, controllers.ErrUserNotFound) {
				return nil, http.StatusNotFound, err
			}
			if err != nil {
				return nil, http.StatusInternalServerError, err
			}
			return user, http.StatusOK, nil
		}))

		gr.Put("/profile", handleJSON(func(r *http.Request) (any, int, error) {
			id, ok := r.Context().Value(middlewares.UserIDKey).(int)
			if !ok {
				return nil, http.StatusUnauthorized, errors.New("unauthorized")
			}
			var req types.UpdateProfileRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				return nil, http.StatusBadRequest, err
			}
			user, err := ctrl.UpdateProfile(r.Context(), id, req)
			if errors.Is(err, controllers.ErrUserNotFound) {
				return nil, http.StatusNotFound, err
			}
			if err != nil {
				return nil, http.StatusInternalServerError, err
			}
			return user, http.StatusOK, nil
		}))
	})

	return r
}

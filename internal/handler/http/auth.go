package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-medi-vault/internal/app"
	"github.com/MKhiriev/go-medi-vault/internal/logger"
	"github.com/MKhiriev/go-medi-vault/internal/utils"
	"github.com/MKhiriev/go-medi-vault/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := utils.DecodeStrictJSON(r.Body, &creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, creds)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Int("status", status).Msg("user registration failed")
		http.Error(w, errorText(err, status), status)
		return
	}

	h.issueSession(w, r, registeredUser)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := utils.DecodeStrictJSON(r.Body, &creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Int("status", status).Msg("user login failed")
		http.Error(w, errorText(err, status), status)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	h.issueSession(w, r, foundUser)
}

// issueSession signs a token for user and answers with the account session,
// both in the body and in the Authorization header.
func (h *Handler) issueSession(w http.ResponseWriter, r *http.Request, user models.User) {
	log := logger.FromRequest(r)

	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, app.MsgSessionIssueFailed, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	if _, err = utils.WriteJSON(w, models.AccountSession{
		UserID: user.UserID,
		Email:  user.Email,
		Token:  token.SignedString,
	}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing session response")
	}
}

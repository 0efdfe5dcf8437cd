package handler

import (
	"net/http"

	"github.com/bagdasarian/club-shop/internal/domain"
)

func (h *Handler) CreateMember(w http.ResponseWriter, r *http.Request) {
	var req TeamMemberRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}
	if err := h.validateRequest(req); err != nil {
		h.handleError(w, r, err)
		return
	}

	member, err := h.memberService.CreateMember(r.Context(), &domain.TeamMember{
		Name:   req.Name,
		Email:  req.Email,
		TeamID: req.Team,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainMemberToHTTP(member))
}

func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.memberService.ListMembers(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response := make([]TeamMemberResponse, 0, len(members))
	for _, member := range members {
		response = append(response, domainMemberToHTTP(member))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) GetMember(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	member, err := h.memberService.GetMember(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainMemberToHTTP(member))
}

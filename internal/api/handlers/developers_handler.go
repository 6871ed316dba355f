package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/devroster/engine/internal/api/types"
	"github.com/devroster/engine/internal/api/validators"
	"github.com/devroster/engine/internal/models"
	"github.com/devroster/engine/internal/services"
)

type DevelopersHandler struct {
	svc services.DeveloperService
}

func NewDevelopersHandler(svc services.DeveloperService) *DevelopersHandler {
	return &DevelopersHandler{svc: svc}
}

// decode reads and validates a developer body, writing a 400 on failure.
func (h *DevelopersHandler) decode(w http.ResponseWriter, r *http.Request) (types.DeveloperDTO, bool) {
	var dto types.DeveloperDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return dto, false
	}
	if err := validators.New().Struct(dto); err != nil {
		writeErrorStr(w, http.StatusBadRequest, validators.Describe(err))
		return dto, false
	}
	return dto, true
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// Create godoc
// @Summary      Create developer
// @Description  Stores a new developer. Emails already used by any record, deleted ones included, are rejected.
// @Tags         developers
// @Accept       json
// @Produce      json
// @Param        developer  body      types.DeveloperDTO  true  "Developer without id"
// @Success      200        {object}  types.DeveloperDTO
// @Failure      400        {object}  types.ErrorResponse
// @Router       /developers [post]
func (h *DevelopersHandler) Create(w http.ResponseWriter, r *http.Request) {
	dto, ok := h.decode(w, r)
	if !ok {
		return
	}
	dev := dto.ToModel()
	dev.ID = 0
	created, err := h.svc.CreateDeveloper(r.Context(), dev)
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}
	logMutation(r, "developer created", created.ID)
	writeJSON(w, http.StatusOK, types.FromModel(created))
}

// Update godoc
// @Summary      Update developer
// @Description  Replaces every field of an existing developer.
// @Tags         developers
// @Accept       json
// @Produce      json
// @Param        developer  body      types.DeveloperDTO  true  "Developer with id"
// @Success      200        {object}  types.DeveloperDTO
// @Failure      400        {object}  types.ErrorResponse
// @Router       /developers [put]
func (h *DevelopersHandler) Update(w http.ResponseWriter, r *http.Request) {
	dto, ok := h.decode(w, r)
	if !ok {
		return
	}
	if dto.ID == nil {
		writeErrorStr(w, http.StatusBadRequest, "id is required")
		return
	}
	updated, err := h.svc.UpdateDeveloper(r.Context(), dto.ToModel())
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}
	logMutation(r, "developer updated", updated.ID)
	writeJSON(w, http.StatusOK, types.FromModel(updated))
}

// Get godoc
// @Summary      Get developer by id
// @Tags         developers
// @Produce      json
// @Param        id   path      int  true  "Developer id"
// @Success      200  {object}  types.DeveloperDTO
// @Failure      400  {object}  types.ErrorResponse
// @Failure      404  {object}  types.ErrorResponse
// @Router       /developers/{id} [get]
func (h *DevelopersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	dev, err := h.svc.GetDeveloperByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err, http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, types.FromModel(dev))
}

// GetByEmail godoc
// @Summary      Get developer by email
// @Tags         developers
// @Produce      json
// @Param        email  path      string  true  "Developer email"
// @Success      200    {object}  types.DeveloperDTO
// @Failure      404    {object}  types.ErrorResponse
// @Router       /developers/email/{email} [get]
func (h *DevelopersHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	// chi matches on RawPath when the client escaped the '@'
	email, err := url.PathUnescape(chi.URLParam(r, "email"))
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid email")
		return
	}
	dev, err := h.svc.GetDeveloperByEmail(r.Context(), email)
	if err != nil {
		writeError(w, r, err, http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, types.FromModel(dev))
}

// List godoc
// @Summary      List active developers
// @Description  Without a specialty every active developer is returned.
// @Tags         developers
// @Produce      json
// @Param        specialty  query     string  false  "Only developers with this specialty"
// @Success      200        {array}   types.DeveloperDTO
// @Router       /developers [get]
func (h *DevelopersHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		devs []models.Developer
		err  error
	)
	if q := r.URL.Query(); q.Has("specialty") {
		devs, err = h.svc.ListActiveBySpecialty(r.Context(), q.Get("specialty"))
	} else {
		devs, err = h.svc.ListActiveDevelopers(r.Context())
	}
	if err != nil {
		writeError(w, r, err, http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, types.FromModels(devs))
}

// Delete godoc
// @Summary      Delete developer
// @Description  Soft deletes by default (status becomes DELETED); isHard=true removes the row.
// @Tags         developers
// @Param        id      path   int   true   "Developer id"
// @Param        isHard  query  bool  false  "Physically remove the record"
// @Success      200
// @Failure      400  {object}  types.ErrorResponse
// @Router       /developers/{id} [delete]
func (h *DevelopersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	hard := false
	if raw := r.URL.Query().Get("isHard"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeErrorStr(w, http.StatusBadRequest, "invalid isHard")
			return
		}
		hard = v
	}

	var err error
	action := "developer soft deleted"
	if hard {
		action = "developer hard deleted"
		err = h.svc.HardDeleteByID(r.Context(), id)
	} else {
		err = h.svc.SoftDeleteByID(r.Context(), id)
	}
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}
	logMutation(r, action, id)
	w.WriteHeader(http.StatusOK)
}

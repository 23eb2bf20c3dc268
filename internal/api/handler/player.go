package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/squadtrack/squadtrack/internal/api/respond"
	"github.com/squadtrack/squadtrack/internal/dates"
	"github.com/squadtrack/squadtrack/internal/store"
)

var validate = validator.New()

// savePayload mirrors the wire body of a save request. Every field except
// date is required; date is DD/MM/YYYY when present.
type savePayload struct {
	Name        string    `json:"name" validate:"required"`
	Age         string    `json:"age" validate:"required"`
	TSI         string    `json:"TSI" validate:"required"`
	Salary      string    `json:"salary" validate:"required"`
	Specialties string    `json:"specialties" validate:"required"`
	Form        string    `json:"form" validate:"required"`
	Fitness     string    `json:"fitness" validate:"required"`
	Skills      skillsMap `json:"skills" validate:"required"`
	Date        string    `json:"date"`
}

// skillsMap accepts skills either as a JSON object or as a string holding an
// encoded object; clients send both forms.
type skillsMap map[string]interface{}

func (m *skillsMap) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var encoded string
		if err := json.Unmarshal(data, &encoded); err != nil {
			return err
		}
		var decoded map[string]interface{}
		if err := json.Unmarshal([]byte(encoded), &decoded); err != nil {
			return fmt.Errorf("invalid JSON in skills: %w", err)
		}
		*m = decoded
		return nil
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*m = decoded
	return nil
}

// SavePlayer upserts a player's static info and appends a weekly snapshot.
// @Summary Save a player snapshot
// @Description Upserts the player's name and specialties, then appends a new dated stats row. A missing or malformed date falls back to today. Failures are reported as an {"error": ...} body.
// @Tags players
// @Accept json
// @Produce json
// @Param playerID path string true "External player identity"
// @Param payload body handler.savePayload true "Player snapshot"
// @Success 200 {object} map[string]interface{}
// @Router /players/{playerID} [post]
func (h *Handler) SavePlayer(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	var payload savePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respond.WriteError(w, err.Error())
		return
	}
	if err := validate.Struct(payload); err != nil {
		respond.WriteError(w, err.Error())
		return
	}

	h.logger.Info("received save", "player_id", playerID, "name", payload.Name)

	sortableDate, err := dates.ToSortable(payload.Date)
	if err != nil {
		// A missing or malformed date means "this week", not a rejected
		// request.
		sortableDate = dates.TodaySortable()
	}

	err = h.store.SaveSnapshot(r.Context(),
		store.Player{
			ID:          playerID,
			Name:        payload.Name,
			Specialties: payload.Specialties,
		},
		store.Snapshot{
			PlayerID:     playerID,
			TSI:          payload.TSI,
			Salary:       payload.Salary,
			Fitness:      payload.Fitness,
			Form:         payload.Form,
			Skills:       payload.Skills,
			SortableDate: sortableDate,
			Age:          payload.Age,
		})
	if err != nil {
		h.logger.Error("save failed", "player_id", playerID, "error", err)
		respond.WriteError(w, err.Error())
		return
	}

	respond.WriteMessage(w, fmt.Sprintf("Player %s saved successfully", payload.Name))
}

// ListPlayers returns stats snapshots joined with player info, newest first.
// @Summary List player snapshots
// @Description Returns snapshots joined with player info, ordered by date descending. Optional exact-match filters. A malformed date filter is reported as an {"error": ...} body.
// @Tags players
// @Produce json
// @Param player_id query string false "Filter by player identity"
// @Param date query string false "Filter by date (DD/MM/YYYY)"
// @Success 200 {array} store.Row
// @Router /players [get]
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	filter := store.Filter{PlayerID: r.URL.Query().Get("player_id")}

	// Unlike Save, a bad date filter is rejected rather than defaulted.
	if d := r.URL.Query().Get("date"); d != "" {
		sortable, err := dates.ToSortable(d)
		if err != nil {
			respond.WriteError(w, "Invalid date format. Use DD/MM/YYYY.")
			return
		}
		filter.SortableDate = sortable
	}

	rows, err := h.store.ListSnapshots(r.Context(), filter)
	if err != nil {
		h.logger.Error("list failed", "error", err)
		respond.WriteError(w, err.Error())
		return
	}

	respond.WriteJSONObject(w, http.StatusOK, rows)
}

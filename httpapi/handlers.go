package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	taskbackend "github.com/prajwal2403/task-backend"
	"github.com/prajwal2403/task-backend/types"
)

// assignmentRow is the wire shape of one resolved assignment.
type assignmentRow struct {
	Person      string `json:"person"`
	Task        string `json:"task"`
	Description string `json:"description,omitempty"`
}

func (s *Server) handleAssignments(w http.ResponseWriter, _ *http.Request) {
	assignments, err := s.engine.Assignments()
	if err != nil {
		// A dangling reference is model corruption; surface it instead of
		// returning a partial mapping.
		s.logger.Error("assignment lookup failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, err.Error())

		return
	}

	rows := make([]assignmentRow, 0, len(assignments))
	for _, a := range assignments {
		rows = append(rows, assignmentRow{
			Person:      a.Person.Name,
			Task:        a.Task.Name,
			Description: a.Task.Description,
		})
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"assignments": rows})
}

func (s *Server) handleRotate(w http.ResponseWriter, _ *http.Request) {
	if err := s.engine.Rotate(taskbackend.TriggerManual); err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())

		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"message": "tasks rotated"})
}

func (s *Server) handleAddPerson(w http.ResponseWriter, r *http.Request) {
	var person types.Person
	if err := json.NewDecoder(r.Body).Decode(&person); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")

		return
	}
	if person.ID <= 0 || person.Name == "" {
		s.writeError(w, http.StatusBadRequest, "person requires a positive id and a name")

		return
	}

	if err := s.engine.AddPerson(person); err != nil {
		s.writeError(w, statusFor(err), err.Error())

		return
	}

	s.rotateOnChange(w)
	s.writeJSON(w, http.StatusCreated, map[string]string{
		"message": fmt.Sprintf("person %s added", person.Name),
	})
}

func (s *Server) handleAddTask(w http.ResponseWriter, r *http.Request) {
	var task types.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")

		return
	}
	if task.ID <= 0 || task.Name == "" {
		s.writeError(w, http.StatusBadRequest, "task requires a positive id and a name")

		return
	}

	if err := s.engine.AddTask(task); err != nil {
		s.writeError(w, statusFor(err), err.Error())

		return
	}

	s.rotateOnChange(w)
	s.writeJSON(w, http.StatusCreated, map[string]string{
		"message": fmt.Sprintf("task %s added", task.Name),
	})
}

func (s *Server) handleRotationDay(w http.ResponseWriter, _ *http.Request) {
	now := s.clock.Now()
	s.writeJSON(w, http.StatusOK, map[string]any{
		"is_rotation_day": taskbackend.IsRotationDay(now, s.cfg.Weekday()),
		"rotation_day":    s.day,
		"today":           now.Weekday().String(),
	})
}

type simulateRequest struct {
	Days int `json:"days"`
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")

		return
	}

	// Evaluate the trigger predicate at now+days; the simulated date is not
	// persisted anywhere.
	target := s.clock.Now().AddDate(0, 0, req.Days)
	rotated := false
	if taskbackend.IsRotationDay(target, s.cfg.Weekday()) {
		if err := s.engine.Rotate(taskbackend.TriggerSimulate); err != nil {
			s.writeError(w, http.StatusInternalServerError, err.Error())

			return
		}
		rotated = true
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"simulated_days": req.Days,
		"weekday":        target.Weekday().String(),
		"rotated":        rotated,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// rotateOnChange performs the immediate rotation that follows an add
// operation. Failures are logged but do not fail the add: the entity is
// already in the roster and will be assigned on the next rotation event.
func (s *Server) rotateOnChange(_ http.ResponseWriter) {
	if !s.cfg.RotateOnChange {
		return
	}
	if err := s.engine.Rotate(taskbackend.TriggerRosterChange); err != nil {
		s.logger.Error("rotation after roster change failed", "error", err)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, taskbackend.ErrDuplicatePerson), errors.Is(err, taskbackend.ErrDuplicateTask):
		return http.StatusConflict
	case errors.Is(err, taskbackend.ErrUnknownTask), errors.Is(err, taskbackend.ErrUnknownPerson):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

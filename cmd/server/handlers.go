package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Simplici0/scanquote/internal/logger"
	"github.com/Simplici0/scanquote/internal/pricing"
	"github.com/Simplici0/scanquote/internal/quote"
)

const (
	maxBodyBytes = 1 << 20
	maxScenarios = 200
)

// calculateRequest is the body of /api/calculate and /api/quote/text.
type calculateRequest struct {
	Inputs       pricing.Inputs `json:"inputs"`
	StaffingMode string         `json:"staffing_mode"`
	LaborMode    string         `json:"labor_mode"`
}

// compareRequest is the body of /api/scenarios/compare.
type compareRequest struct {
	Base         pricing.Inputs     `json:"base"`
	StaffingMode string             `json:"staffing_mode"`
	LaborMode    string             `json:"labor_mode"`
	Scenarios    []pricing.Scenario `json:"scenarios"`
}

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (s *server) handleCalculatorForm(w http.ResponseWriter, r *http.Request) {
	s.renderTemplate(w, http.StatusOK, "calculator.html", calculatorViewData{
		Inputs:       s.defaults.Inputs,
		StaffingMode: s.defaults.StaffingMode,
		LaborMode:    s.defaults.LaborMode,
	})
}

func (s *server) handleCalculatorSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form, err := parseCalculatorForm(r)
	if err != nil {
		s.renderTemplate(w, http.StatusBadRequest, "calculator.html", calculatorViewData{
			baseViewData: baseViewData{ErrorMessage: err.Error()},
			Inputs:       form.Inputs,
			StaffingMode: s.defaults.StaffingMode,
			LaborMode:    s.defaults.LaborMode,
		})
		return
	}

	result := pricing.Calculate(form.Inputs, form.StaffingMode, form.LaborMode)
	logger.WithContext(r.Context()).Debug("calculated job",
		"staffing_mode", form.StaffingMode,
		"labor_mode", form.LaborMode,
		"valid", result.Valid,
	)

	s.renderTemplate(w, http.StatusOK, "calculator.html", calculatorViewData{
		Inputs:       form.Inputs,
		StaffingMode: form.StaffingMode,
		LaborMode:    form.LaborMode,
		Result:       &result,
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (s *server) handleDefaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.defaults)
}

func (s *server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	in, staffing, labor, ok := decodeCalculateRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, pricing.Calculate(in, staffing, labor))
}

func (s *server) handleQuoteText(w http.ResponseWriter, r *http.Request) {
	in, staffing, labor, ok := decodeCalculateRequest(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, quote.Text(in, pricing.Calculate(in, staffing, labor)))
}

func (s *server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	staffing, labor, err := parseModes(req.StaffingMode, req.LaborMode)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid mode", err)
		return
	}
	if len(req.Scenarios) > maxScenarios {
		writeError(w, http.StatusBadRequest, "Too many scenarios", fmt.Errorf("at most %d scenarios are allowed, got %d", maxScenarios, len(req.Scenarios)))
		return
	}

	for i := range req.Scenarios {
		if req.Scenarios[i].ID == "" {
			req.Scenarios[i].ID = uuid.NewString()
		}
	}

	cmp := pricing.Compare(req.Base, staffing, labor, req.Scenarios)
	logger.WithContext(r.Context()).Debug("compared scenarios",
		"rows", len(cmp.Rows),
		"cheapest", cmp.Cheapest,
		"fastest", cmp.Fastest,
	)
	writeJSON(w, http.StatusOK, cmp)
}

// decodeCalculateRequest writes a 400 and reports false when the body is unusable.
func decodeCalculateRequest(w http.ResponseWriter, r *http.Request) (pricing.Inputs, pricing.StaffingMode, pricing.LaborMode, bool) {
	var req calculateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return pricing.Inputs{}, "", "", false
	}

	staffing, labor, err := parseModes(req.StaffingMode, req.LaborMode)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid mode", err)
		return pricing.Inputs{}, "", "", false
	}
	return req.Inputs, staffing, labor, true
}

func parseModes(staffing, labor string) (pricing.StaffingMode, pricing.LaborMode, error) {
	sm, err := pricing.ParseStaffingMode(staffing)
	if err != nil {
		return "", "", err
	}
	lm, err := pricing.ParseLaborMode(labor)
	if err != nil {
		return "", "", err
	}
	return sm, lm, nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return err
	}
	return nil
}

// writeJSON encodes before writing so an unencodable value (an overflowed
// float, say) still yields a well-formed 500.
func writeJSON(w http.ResponseWriter, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = json.Marshal(ErrorResponse{Error: "Failed to encode response", Details: err.Error()})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

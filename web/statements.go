package web

import (
	"encoding/json"
	"net/http"

	"github.com/ledgersheet-dev/ledgersheet/report"
	"github.com/ledgersheet-dev/ledgersheet/table"
)

// StatementResponse is the JSON response structure for the statements
// endpoint: the rendered matrix plus the period and currency axes.
type StatementResponse struct {
	Statement  string          `json:"statement"`
	Rows       [][]table.Value `json:"rows"`
	Periods    []string        `json:"periods"`
	Currencies []string        `json:"currencies"`
	Dropped    int             `json:"dropped,omitempty"`
}

// handleGetStatements handles GET requests to /api/statements.
//
// Query parameters:
//   - type: income | balance | budget (default income).
//
// Date semantics follow the statement type: income and budget bucket flows
// per month, balance reports point-in-time positions per month end.
func (s *Server) handleGetStatements(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("type")
	if name == "" {
		name = "income"
	}
	st, err := report.ParseStatementType(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rep, err := s.statement(r.Context(), st)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	periods := make([]string, len(rep.Periods))
	for i, p := range rep.Periods {
		periods[i] = p.String()
	}

	writeJSONResponse(w, &StatementResponse{
		Statement:  st.String(),
		Rows:       rep.Rows,
		Periods:    periods,
		Currencies: rep.Currencies,
		Dropped:    rep.Dropped,
	})
}

func (s *Server) handleGetVersion(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, map[string]string{
		"version": s.Version,
		"commit":  s.CommitSHA,
	})
}

func writeJSONResponse(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

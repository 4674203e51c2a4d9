package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/govctl/internal/domain"
	"github.com/trebuchet-org/govctl/internal/domain/models"
	"github.com/trebuchet-org/govctl/internal/usecase"
)

func init() {
	color.NoColor = true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// runCLI executes the root command against the given API router
func runCLI(t *testing.T, router *mux.Router, args ...string) (string, error) {
	t.Helper()
	t.Setenv("GOVCTL_HOME", t.TempDir())

	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{
		"--api-url", ts.URL + "/api",
		"--token", "secret-token",
		"--org", "org-1",
		"--non-interactive",
	}, args...))

	err := root.Execute()
	return out.String(), err
}

func emptyAuditPage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.Page[models.AuditEvent]{Items: []models.AuditEvent{}, Page: 1, PageSize: 25})
}

func budgetProposal(status models.ProposalStatus) models.Proposal {
	return models.Proposal{
		ID:             "prop-1",
		OrganizationID: "org-1",
		Title:          "Adopt budget",
		Status:         status,
		Options: []models.ProposalOption{
			{ID: "opt-yes", ProposalID: "prop-1", Text: "Yes"},
			{ID: "opt-no", ProposalID: "prop-1", Text: "No"},
		},
	}
}

func TestSkipsApp(t *testing.T) {
	root := NewRootCmd()
	for _, name := range []string{"version", "help", "completion"} {
		assert.True(t, skipsApp(&cobra.Command{Use: name}), name)
	}

	proposal, _, err := root.Find([]string{"proposal", "list"})
	require.NoError(t, err)
	assert.False(t, skipsApp(proposal))
}

func TestUsesLocalConfigOnly(t *testing.T) {
	root := NewRootCmd()
	for _, args := range [][]string{{"config"}, {"config", "set"}, {"config", "remove"}} {
		cmd, _, err := root.Find(args)
		require.NoError(t, err)
		assert.True(t, usesLocalConfigOnly(cmd), args)
	}

	proposal, _, err := root.Find([]string{"proposal", "list"})
	require.NoError(t, err)
	assert.False(t, usesLocalConfigOnly(proposal))
	assert.False(t, usesLocalConfigOnly(root))
}

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "govctl version dev")
}

func TestAuditListEmptyStates(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/audit-events", emptyAuditPage).Methods("GET")

	out, err := runCLI(t, router, "audit", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No audit events found for this organization.")

	out, err = runCLI(t, router, "audit", "list", "--action", "Vote", "--from", "2025-01-01")
	require.NoError(t, err)
	assert.Contains(t, out, "No audit events found matching your filters.")
}

func TestAuditListSendsNormalizedFilters(t *testing.T) {
	var query atomic.Value
	router := mux.NewRouter()
	router.HandleFunc("/api/audit-events", func(w http.ResponseWriter, r *http.Request) {
		query.Store(r.URL.Query())
		emptyAuditPage(w, r)
	}).Methods("GET")

	_, err := runCLI(t, router, "audit", "list", "--action", "Vote,Create", "--to", "2025-01-31", "--page", "3")
	require.NoError(t, err)

	q := query.Load().(url.Values)
	assert.Equal(t, []string{"org-1"}, q["organizationId"])
	assert.Equal(t, []string{"Vote,Create"}, q["actionType"])
	assert.Equal(t, []string{"2025-01-31T23:59:59.999Z"}, q["dateTo"])
	assert.Equal(t, []string{"3"}, q["page"])
}

func TestOrgShowLoadFailure(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/organizations/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "database unavailable"})
	}).Methods("GET")
	router.HandleFunc("/api/organizations/{id}/memberships", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []models.Membership{})
	}).Methods("GET")
	router.HandleFunc("/api/organizations/{id}/share-types", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []models.ShareType{})
	}).Methods("GET")

	_, err := runCLI(t, router, "org", "show")
	require.Error(t, err)
	assert.Equal(t, usecase.OrgLoadFailedMessage+"\n"+retryHint, err.Error())
}

func TestProposalVote(t *testing.T) {
	var voted atomic.Bool
	router := mux.NewRouter()
	router.HandleFunc("/api/proposals/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, budgetProposal(models.ProposalStatusOpen))
	}).Methods("GET")
	router.HandleFunc("/api/proposals/{id}/votes/me", func(w http.ResponseWriter, r *http.Request) {
		if !voted.Load() {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, models.Vote{ID: "vote-1", ProposalID: "prop-1", OptionID: "opt-yes", VotingPower: 500, CastAt: time.Now()})
	}).Methods("GET")
	router.HandleFunc("/api/proposals/{id}/votes", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			OptionID string `json:"optionId"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "opt-yes", body.OptionID)
		voted.Store(true)
		writeJSON(w, http.StatusCreated, models.Vote{ID: "vote-1", ProposalID: "prop-1", OptionID: "opt-yes", VotingPower: 500})
	}).Methods("POST")

	out, err := runCLI(t, router, "proposal", "vote", "prop-1", "--option", "opt-yes")
	require.NoError(t, err)
	assert.Contains(t, out, usecase.VoteSuccessMessage)
	assert.Contains(t, out, "You voted for Yes")
	assert.True(t, voted.Load())
}

func TestProposalVoteRejectedWhenClosed(t *testing.T) {
	var posted atomic.Bool
	router := mux.NewRouter()
	router.HandleFunc("/api/proposals/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, budgetProposal(models.ProposalStatusClosed))
	}).Methods("GET")
	router.HandleFunc("/api/proposals/{id}/votes", func(w http.ResponseWriter, r *http.Request) {
		posted.Store(true)
		w.WriteHeader(http.StatusCreated)
	}).Methods("POST")

	_, err := runCLI(t, router, "proposal", "vote", "prop-1", "--option", "opt-yes")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotOpenForVoting)
	assert.False(t, posted.Load())
}

func TestProposalResultsJSON(t *testing.T) {
	winner := "opt-yes"
	router := mux.NewRouter()
	router.HandleFunc("/api/proposals/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, budgetProposal(models.ProposalStatusClosed))
	}).Methods("GET")
	router.HandleFunc("/api/proposals/{id}/results", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.ProposalResults{
			ProposalID:       "prop-1",
			TotalVotingPower: 800,
			WinningOptionID:  &winner,
			Options: []models.OptionResult{
				{OptionID: "opt-yes", OptionText: "Yes", VoteCount: 3, VotingPower: 500},
				{OptionID: "opt-no", OptionText: "No", VoteCount: 2, VotingPower: 300},
			},
		})
	}).Methods("GET")

	out, err := runCLI(t, router, "-o", "json", "proposal", "results", "prop-1")
	require.NoError(t, err)

	var result struct {
		Results domain.ResultsSummary
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Results.Options, 2)
	assert.Equal(t, 62.5, result.Results.Options[0].Share)
	assert.Equal(t, 37.5, result.Results.Options[1].Share)
	assert.True(t, result.Results.Options[0].Winner)
}

func TestProposalTransitionGatedBeforeRequest(t *testing.T) {
	var posted atomic.Bool
	router := mux.NewRouter()
	router.HandleFunc("/api/proposals/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, budgetProposal(models.ProposalStatusFinalized))
	}).Methods("GET")
	router.HandleFunc("/api/proposals/{id}/{action}", func(w http.ResponseWriter, r *http.Request) {
		posted.Store(true)
	}).Methods("POST")

	_, err := runCLI(t, router, "proposal", "close", "prop-1", "--yes")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrActionNotAllowed)
	assert.False(t, posted.Load())
}

func TestLoadFailed(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "server error falls back with retry hint",
			err:      &domain.APIError{StatusCode: http.StatusBadGateway, Method: "GET", Path: "/users"},
			expected: "Failed to load users.\n" + retryHint,
		},
		{
			name:     "not found",
			err:      &domain.APIError{StatusCode: http.StatusNotFound, Method: "GET", Path: "/users/u-9"},
			expected: domain.NotFoundMessage + "\n" + retryHint,
		},
		{
			name:     "input errors carry no hint",
			err:      domain.ErrNoActiveOrganization,
			expected: domain.ErrNoActiveOrganization.Error(),
		},
		{
			name:     "transport error",
			err:      errors.New("dial tcp: connection refused"),
			expected: "Failed to load users.\n" + retryHint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := loadFailed(tt.err, "Failed to load users.")
			require.Error(t, err)
			assert.Equal(t, tt.expected, err.Error())
			assert.ErrorIs(t, err, tt.err)
		})
	}

	assert.NoError(t, loadFailed(nil, "unused"))
}

func TestActionFailed(t *testing.T) {
	err := actionFailed(&domain.APIError{StatusCode: http.StatusBadRequest, Message: "End date must be after start date"}, "Failed to update proposal.")
	assert.Equal(t, "End date must be after start date", err.Error())
}

// runBareCLI executes the root command with only the environment as configuration
func runBareCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--non-interactive"}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestConfigCommandsWithoutAPIURL(t *testing.T) {
	home := t.TempDir()
	t.Setenv("GOVCTL_HOME", home)
	t.Setenv("GOVCTL_API_URL", "")

	out, err := runBareCLI(t, "config", "set", "api-url", "https://gov.example.org/api")
	require.NoError(t, err)
	assert.Contains(t, out, "Set api-url to: https://gov.example.org/api")

	data, err := os.ReadFile(filepath.Join(home, "config.local.json"))
	require.NoError(t, err)
	var stored map[string]string
	require.NoError(t, json.Unmarshal(data, &stored))
	assert.Equal(t, "https://gov.example.org/api", stored["api_url"])

	_, err = runBareCLI(t, "config")
	require.NoError(t, err)

	_, err = runBareCLI(t, "config", "remove", "api-url")
	require.NoError(t, err)

	_, err = runBareCLI(t, "audit", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api url is not configured")
}

func TestConfigSetAPIURLUsedByRemoteCommands(t *testing.T) {
	t.Setenv("GOVCTL_HOME", t.TempDir())
	t.Setenv("GOVCTL_API_URL", "")

	router := mux.NewRouter()
	router.HandleFunc("/api/audit-events", emptyAuditPage).Methods("GET")
	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)

	_, err := runBareCLI(t, "config", "set", "api-url", ts.URL+"/api")
	require.NoError(t, err)

	out, err := runBareCLI(t, "--token", "secret-token", "--org", "org-1", "audit", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No audit events found for this organization.")
}

func TestWebhooksRetryReloadsEvents(t *testing.T) {
	newRouter := func(listStatus int) *mux.Router {
		router := mux.NewRouter()
		router.HandleFunc("/api/outbound-events/{id}/retry", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, models.OutboundEvent{ID: mux.Vars(r)["id"], Status: models.OutboundStatusPending, AttemptCount: 4})
		}).Methods("POST")
		router.HandleFunc("/api/outbound-events", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "org-1", r.URL.Query().Get("organizationId"))
			if listStatus != http.StatusOK {
				writeJSON(w, listStatus, map[string]string{"message": "queue offline"})
				return
			}
			writeJSON(w, http.StatusOK, models.Page[models.OutboundEvent]{
				Items: []models.OutboundEvent{{ID: "evt-9", EventType: "proposal.closed", Status: models.OutboundStatusPending}},
				Page:  1, PageSize: 25, TotalCount: 1,
			})
		}).Methods("GET")
		return router
	}

	t.Run("renders the reloaded list", func(t *testing.T) {
		out, err := runCLI(t, newRouter(http.StatusOK), "webhooks", "retry", "evt-9")
		require.NoError(t, err)
		assert.Contains(t, out, "Retry queued for event evt-9.")
		assert.Contains(t, out, "proposal.closed")
	})

	t.Run("failed reload only warns", func(t *testing.T) {
		out, err := runCLI(t, newRouter(http.StatusInternalServerError), "webhooks", "retry", "evt-9")
		require.NoError(t, err)
		assert.Contains(t, out, "Retry queued for event evt-9.")
		assert.Contains(t, out, "Could not refresh outbound events: Failed to load outbound events.")
		assert.NotContains(t, out, "GET /")
	})
}

func TestShareTypeCreateRefreshWarning(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/organizations/{id}/share-types", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, models.ShareType{ID: "st-1", OrganizationID: "org-1", Name: "Common", Symbol: "CMN", VotingWeight: 1})
	}).Methods("POST")
	router.HandleFunc("/api/organizations/{id}/share-types", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "database unavailable"})
	}).Methods("GET")

	out, err := runCLI(t, router, "share-type", "create", "--name", "Common", "--symbol", "cmn")
	require.NoError(t, err)
	assert.Contains(t, out, "Could not refresh share types: Failed to load share types.")
	assert.NotContains(t, out, "database unavailable")
	assert.NotContains(t, out, "GET /")
}

package quantum

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// DefaultRuntimeURL is the IBM Quantum Runtime REST endpoint.
const DefaultRuntimeURL = "https://api.quantum-computing.ibm.com/runtime"

// TransportError wraps any failure reaching the remote execution boundary:
// connectivity, authentication, job rejection, or queue timeout. Callers
// degrade the hardware row of the comparison instead of aborting the run.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("ibm runtime %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IBMConfig carries the credentials and knobs for the hardware backend.
type IBMConfig struct {
	Token        string
	Instance     string // CRN of the IBM Cloud instance
	Backend      string // device name, e.g. "ibm_brisbane"
	BaseURL      string // defaults to DefaultRuntimeURL
	PollInterval time.Duration
	Logger       zerolog.Logger
}

// IBMBackend submits circuits to a physical IBM Quantum device through the
// Runtime sampler and polls for results. Queue wait is unbounded and bounded
// only by the caller's context; elapsed time is the caller's concern.
type IBMBackend struct {
	token        string
	instance     string
	backend      string
	baseURL      string
	pollInterval time.Duration
	client       *http.Client
	log          zerolog.Logger
}

// NewIBMBackend returns a hardware executor for the named device.
func NewIBMBackend(cfg IBMConfig) *IBMBackend {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultRuntimeURL
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 5 * time.Second
	}
	return &IBMBackend{
		token:        cfg.Token,
		instance:     cfg.Instance,
		backend:      cfg.Backend,
		baseURL:      cfg.BaseURL,
		pollInterval: cfg.PollInterval,
		client:       &http.Client{Timeout: 30 * time.Second},
		log:          cfg.Logger,
	}
}

func (b *IBMBackend) Name() string {
	return "IBM " + b.backend
}

// Run submits the circuit, waits for the queued job to complete, and
// returns the device's measured counts. Cancellation of ctx attempts to
// cancel the remote job and surfaces as a TransportError; any partial
// results are discarded.
func (b *IBMBackend) Run(ctx context.Context, c *Circuit, shots int) (Distribution, error) {
	jobID, err := b.submit(ctx, c, shots)
	if err != nil {
		return nil, err
	}
	b.log.Info().Str("job_id", jobID).Str("backend", b.backend).Int("shots", shots).
		Msg("job submitted, waiting in queue")

	if err := b.wait(ctx, jobID); err != nil {
		return nil, err
	}
	return b.results(ctx, jobID)
}

func (b *IBMBackend) submit(ctx context.Context, c *Circuit, shots int) (string, error) {
	payload := map[string]any{
		"program_id": "sampler",
		"backend":    b.backend,
		"params": map[string]any{
			"circuits": []string{c.ToQASM()},
			"shots":    shots,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", &TransportError{Op: "submit", Err: err}
	}

	var resp struct {
		ID string `json:"id"`
	}
	if err := b.do(ctx, http.MethodPost, "/jobs", body, &resp); err != nil {
		return "", &TransportError{Op: "submit", Err: err}
	}
	if resp.ID == "" {
		return "", &TransportError{Op: "submit", Err: fmt.Errorf("no job id in response")}
	}
	return resp.ID, nil
}

// wait polls job status until completion. The only suspension point in a
// benchmark run: a stuck queue ends here via ctx, not by hanging forever.
func (b *IBMBackend) wait(ctx context.Context, jobID string) error {
	ticker := time.NewTicker(b.pollInterval)
	defer ticker.Stop()

	for {
		var status struct {
			ID     string `json:"id"`
			Status string `json:"status"`
			Reason string `json:"reason,omitempty"`
		}
		if err := b.do(ctx, http.MethodGet, "/jobs/"+jobID, nil, &status); err != nil {
			if ctx.Err() != nil {
				b.cancel(jobID)
				return &TransportError{Op: "wait", Err: ctx.Err()}
			}
			return &TransportError{Op: "status", Err: err}
		}

		switch status.Status {
		case "Completed", "completed":
			b.log.Info().Str("job_id", jobID).Msg("job complete")
			return nil
		case "Failed", "failed", "Cancelled", "cancelled":
			return &TransportError{Op: "wait", Err: fmt.Errorf("job %s: %s %s", jobID, status.Status, status.Reason)}
		default:
			b.log.Debug().Str("job_id", jobID).Str("status", status.Status).Msg("still queued")
		}

		select {
		case <-ctx.Done():
			b.cancel(jobID)
			return &TransportError{Op: "wait", Err: ctx.Err()}
		case <-ticker.C:
		}
	}
}

func (b *IBMBackend) results(ctx context.Context, jobID string) (Distribution, error) {
	var resp struct {
		Counts map[string]int `json:"counts"`
	}
	if err := b.do(ctx, http.MethodGet, "/jobs/"+jobID+"/results", nil, &resp); err != nil {
		return nil, &TransportError{Op: "results", Err: err}
	}
	if len(resp.Counts) == 0 {
		return nil, &TransportError{Op: "results", Err: fmt.Errorf("job %s returned no counts", jobID)}
	}
	counts := make(Distribution, len(resp.Counts))
	for bitstring, count := range resp.Counts {
		counts[bitstring] = count
	}
	return counts, nil
}

// cancel makes a best-effort attempt to free the queue slot; failures are
// only logged since the run is already being abandoned.
func (b *IBMBackend) cancel(jobID string) {
	ctx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := b.do(ctx, http.MethodDelete, "/jobs/"+jobID, nil, nil); err != nil {
		b.log.Warn().Str("job_id", jobID).Err(err).Msg("could not cancel job")
	}
}

func (b *IBMBackend) do(ctx context.Context, method, path string, body []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+b.token)
	req.Header.Set("Content-Type", "application/json")
	if b.instance != "" {
		req.Header.Set("Service-CRN", b.instance)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

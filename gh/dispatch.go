package gh

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// DispatchWorkflow triggers a workflow_dispatch run of the given workflow
// file on ref. The trigger is fire and forget: GitHub only acknowledges the
// request, there is no run handle to wait on.
func (s *Session) DispatchWorkflow(ctx context.Context, workflowFile, ref string) error {
	body, err := json.Marshal(struct {
		Ref string `json:"ref"`
	}{Ref: ref})
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s/repos/%s/%s/actions/workflows/%s/dispatches", s.base(), s.Owner, s.Repo, workflowFile)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, addr, bytes.NewReader(body))
	if err != nil {
		return err
	}
	s.authorize(req)

	resp, err := s.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("cannot dispatch workflow %q: %w", workflowFile, err)
	}
	defer resp.Body.Close()
	if err := statusError(resp); err != nil {
		return fmt.Errorf("cannot dispatch workflow %q: %w", workflowFile, err)
	}
	return nil
}

package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Client is a floor-tracking GraphQL API client.
type Client struct {
	token      string
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new API client for the given endpoint.
func NewClient(baseURL, token string) *Client {
	return &Client{
		token: token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: baseURL,
	}
}

// GraphQLRequest represents a GraphQL request.
type GraphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// GraphQLResponse represents a GraphQL response.
type GraphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors,omitempty"`
}

// GraphQLError represents a GraphQL error. Messages are assumed suitable
// for direct operator display.
type GraphQLError struct {
	Message   string `json:"message"`
	Locations []struct {
		Line   int `json:"line"`
		Column int `json:"column"`
	} `json:"locations,omitempty"`
	Path []interface{} `json:"path,omitempty"`
}

// Do executes a GraphQL request and unmarshals the response into result.
// Requests are never retried or cancelled once issued.
func (c *Client) Do(query string, variables map[string]interface{}, result interface{}) error {
	req := GraphQLRequest{
		Query:     query,
		Variables: variables,
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequest("POST", c.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
	}

	var gqlResp GraphQLResponse
	if err := json.Unmarshal(respBody, &gqlResp); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	if len(gqlResp.Errors) > 0 {
		return fmt.Errorf("GraphQL error: %s", gqlResp.Errors[0].Message)
	}

	if result != nil {
		if err := json.Unmarshal(gqlResp.Data, result); err != nil {
			return fmt.Errorf("unmarshal data: %w", err)
		}
	}

	return nil
}

// newMutationID generates the client-side id carried by every mutation.
// The server deduplicates retried submissions on this id.
func newMutationID() string {
	return uuid.New().String()
}

// GetEmployeeByBadge returns the employee for a badge number, or nil when
// no employee matches.
func (c *Client) GetEmployeeByBadge(badge string) (*Employee, error) {
	var result struct {
		Employee *Employee `json:"employeeByBadge"`
	}

	variables := map[string]interface{}{"badgeNumber": badge}
	if err := c.Do(queryEmployeeByBadge, variables, &result); err != nil {
		return nil, err
	}

	return result.Employee, nil
}

// GetActiveSession returns the employee's open session, or nil when there
// is none. Used for session recovery on re-scan.
func (c *Client) GetActiveSession(badge string) (*Session, error) {
	var result struct {
		Session *Session `json:"activeSessionForEmployee"`
	}

	variables := map[string]interface{}{"badgeNumber": badge}
	if err := c.Do(queryActiveSession, variables, &result); err != nil {
		return nil, err
	}

	return result.Session, nil
}

// GetProcessOperation returns the operation for a (work order, process)
// pair, or nil when no operation matches.
func (c *Client) GetProcessOperation(workOrderCode, processID string) (*ProcessOperation, error) {
	var result struct {
		Operation *ProcessOperation `json:"processOperation"`
	}

	variables := map[string]interface{}{
		"workOrderCode": workOrderCode,
		"processId":     processID,
	}
	if err := c.Do(queryProcessOperation, variables, &result); err != nil {
		return nil, err
	}

	return result.Operation, nil
}

// GetMachinesForProcess returns the machines available to a process.
func (c *Client) GetMachinesForProcess(processID string) ([]Machine, error) {
	var result struct {
		Machines []Machine `json:"machinesForProcess"`
	}

	variables := map[string]interface{}{"processId": processID}
	if err := c.Do(queryMachinesForProcess, variables, &result); err != nil {
		return nil, err
	}

	return result.Machines, nil
}

// RecordScan records one scan event against an operation. The returned
// counters tell the caller whether a unit was opened or closed.
func (c *Client) RecordScan(operationID, employeeID, machineID string) (*ScanResult, error) {
	var result struct {
		RecordScan struct {
			ProcessOperation ScanResult `json:"processOperation"`
		} `json:"recordScan"`
	}

	variables := map[string]interface{}{
		"mutationId":  newMutationID(),
		"operationId": operationID,
		"employeeId":  employeeID,
		"machineId":   machineID,
	}
	if err := c.Do(mutationRecordScan, variables, &result); err != nil {
		return nil, err
	}

	return &result.RecordScan.ProcessOperation, nil
}

// SetPauseState opens or closes a pause on an operation and returns the
// resulting operation state.
func (c *Client) SetPauseState(operationID string, opening bool, reason string) (string, error) {
	var result struct {
		SetPauseState struct {
			State string `json:"state"`
		} `json:"setPauseState"`
	}

	variables := map[string]interface{}{
		"mutationId":  newMutationID(),
		"operationId": operationID,
		"opening":     opening,
		"reason":      reason,
	}
	if err := c.Do(mutationSetPauseState, variables, &result); err != nil {
		return "", err
	}

	return result.SetPauseState.State, nil
}

// RecordScrap marks the operation scrapped and returns the resulting state.
func (c *Client) RecordScrap(sessionID, operationID, reason string) (string, error) {
	var result struct {
		RecordScrap struct {
			ProcessOperation struct {
				State string `json:"state"`
			} `json:"processOperation"`
		} `json:"recordScrap"`
	}

	variables := map[string]interface{}{
		"mutationId":  newMutationID(),
		"sessionId":   sessionID,
		"operationId": operationID,
		"reason":      reason,
	}
	if err := c.Do(mutationRecordScrap, variables, &result); err != nil {
		return "", err
	}

	return result.RecordScrap.ProcessOperation.State, nil
}

// RecordProblem files a problem report against a session and returns the
// report id.
func (c *Client) RecordProblem(sessionID, description string) (string, error) {
	var result struct {
		RecordProblem struct {
			ID string `json:"id"`
		} `json:"recordProblem"`
	}

	variables := map[string]interface{}{
		"mutationId":  newMutationID(),
		"sessionId":   sessionID,
		"description": description,
	}
	if err := c.Do(mutationRecordProblem, variables, &result); err != nil {
		return "", err
	}

	return result.RecordProblem.ID, nil
}

// RecordCollaborator registers a second operator on a session and returns
// the collaborator's display name.
func (c *Client) RecordCollaborator(sessionID, badge string) (string, error) {
	var result struct {
		RecordCollaborator struct {
			CollaboratorName string `json:"collaboratorName"`
		} `json:"recordCollaborator"`
	}

	variables := map[string]interface{}{
		"mutationId":  newMutationID(),
		"sessionId":   sessionID,
		"badgeNumber": badge,
	}
	if err := c.Do(mutationRecordCollaborator, variables, &result); err != nil {
		return "", err
	}

	return result.RecordCollaborator.CollaboratorName, nil
}

// RecordInventoryMove registers a stock movement against an operation.
func (c *Client) RecordInventoryMove(operationID, material, direction string, quantity int) error {
	variables := map[string]interface{}{
		"mutationId":  newMutationID(),
		"operationId": operationID,
		"material":    material,
		"direction":   direction,
		"quantity":    quantity,
	}
	return c.Do(mutationRecordInventoryMove, variables, nil)
}

// GetFloorSummary returns the dashboard aggregate rows.
func (c *Client) GetFloorSummary() (*FloorSummary, error) {
	var result struct {
		Summary FloorSummary `json:"floorSummary"`
	}

	if err := c.Do(queryFloorSummary, nil, &result); err != nil {
		return nil, err
	}

	return &result.Summary, nil
}

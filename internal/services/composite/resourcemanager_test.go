package compositesrv_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	waitdomain "github.com/oracle/oci-go-sdk-sub024/internal/domains/waiter"
	compositesrv "github.com/oracle/oci-go-sdk-sub024/internal/services/composite"
	waitsrv "github.com/oracle/oci-go-sdk-sub024/internal/services/waiter"
	resttr "github.com/oracle/oci-go-sdk-sub024/internal/transport/rest"
	rmapi "github.com/oracle/oci-go-sdk-sub024/internal/transport/rest/resourcemanager"
	"github.com/stretchr/testify/require"
)

var fastWait = waitdomain.WaitConfig{MaxInterval: time.Millisecond, MaxWait: 5 * time.Second}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// stackServer serves a single stack whose state walks through states, one
// state per GET, and stays on the last one.
type stackServer struct {
	states []string
	gets   atomic.Int32
	gone   bool
}

func (s *stackServer) mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /20180917/stacks", func(w http.ResponseWriter, r *http.Request) {
		var details rmapi.CreateStackDetails
		_ = json.NewDecoder(r.Body).Decode(&details)
		if details.DisplayName == "rejected" {
			writeJSON(w, http.StatusConflict, map[string]string{"code": "Conflict", "message": "stack exists"})
			return
		}
		writeJSON(w, http.StatusOK, rmapi.Stack{ID: "stack-1", LifecycleState: rmapi.StackLifecycleStateCreating})
	})
	mux.HandleFunc("GET /20180917/stacks/{stackId}", func(w http.ResponseWriter, r *http.Request) {
		n := int(s.gets.Add(1))
		if s.gone {
			writeJSON(w, http.StatusNotFound, map[string]string{"code": "NotAuthorizedOrNotFound"})
			return
		}
		state := s.states[min(n, len(s.states))-1]
		writeJSON(w, http.StatusOK, rmapi.Stack{ID: r.PathValue("stackId"), LifecycleState: state})
	})
	mux.HandleFunc("DELETE /20180917/stacks/{stackId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("POST /20180917/stacks/{stackId}/actions/changeCompartment", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(resttr.HeaderOpcWorkRequestID, "wr-move")
		w.WriteHeader(http.StatusAccepted)
	})
	mux.HandleFunc("GET /20180917/workRequests/{workRequestId}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, rmapi.WorkRequest{ID: r.PathValue("workRequestId"), Status: rmapi.WorkRequestStatusSucceeded})
	})
	mux.HandleFunc("POST /20180917/jobs", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, rmapi.Job{ID: "job-1", LifecycleState: rmapi.JobLifecycleStateAccepted})
	})
	mux.HandleFunc("GET /20180917/jobs/{jobId}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, rmapi.Job{ID: r.PathValue("jobId"), LifecycleState: rmapi.JobLifecycleStateSucceeded})
	})
	mux.HandleFunc("DELETE /20180917/jobs/{jobId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return mux
}

func newResourceManagerService(t *testing.T, srv *stackServer) *compositesrv.ResourceManagerService {
	t.Helper()

	httpSrv := httptest.NewServer(srv.mux())
	t.Cleanup(httpSrv.Close)

	client, err := rmapi.NewClient(httpSrv.URL)
	require.NoError(t, err)

	return compositesrv.NewResourceManagerService(client, waitsrv.NewService())
}

func createStackArgs(name string) *rmapi.CreateStackArgs {
	return &rmapi.CreateStackArgs{Details: &rmapi.CreateStackDetails{
		CompartmentID: "c1",
		DisplayName:   name,
		ConfigSource:  &rmapi.ConfigSource{ConfigSourceType: rmapi.ConfigSourceTypeZipUpload},
	}}
}

func TestResourceManagerService_CreateStackAndWaitForState(t *testing.T) {
	ctx := context.Background()

	t.Run("ok: waits until active", func(t *testing.T) {
		srv := &stackServer{states: []string{"CREATING", "CREATING", "ACTIVE"}}
		svc := newResourceManagerService(t, srv)

		res, err := svc.CreateStackAndWaitForState(ctx, createStackArgs("net"), []string{"active"}, fastWait)
		require.NoError(t, err)
		require.Equal(t, waitdomain.OutcomeMatched, res.Wait.Outcome)
		require.Equal(t, 3, res.Wait.Polls)
		require.Equal(t, "stack-1", res.Mutation.Stack.ID)

		latest, ok := res.Latest().(*rmapi.GetStackResult)
		require.True(t, ok)
		require.Equal(t, rmapi.StackLifecycleStateActive, latest.Stack.LifecycleState)
	})

	t.Run("ok: no target states skips polling", func(t *testing.T) {
		srv := &stackServer{states: []string{"ACTIVE"}}
		svc := newResourceManagerService(t, srv)

		res, err := svc.CreateStackAndWaitForState(ctx, createStackArgs("net"), nil, fastWait)
		require.NoError(t, err)
		require.Equal(t, waitdomain.OutcomeSkipped, res.Wait.Outcome)
		require.Same(t, res.Mutation, res.Wait.TriggeringResult)
		require.Nil(t, res.Latest())
		require.Zero(t, srv.gets.Load())
	})

	t.Run("error: mutation failure is returned unchanged", func(t *testing.T) {
		srv := &stackServer{states: []string{"ACTIVE"}}
		svc := newResourceManagerService(t, srv)

		res, err := svc.CreateStackAndWaitForState(ctx, createStackArgs("rejected"), []string{"ACTIVE"}, fastWait)
		require.Nil(t, res)

		var serviceErr *resttr.ServiceError
		require.ErrorAs(t, err, &serviceErr)
		require.Equal(t, http.StatusConflict, serviceErr.StatusCode)

		var compositeErr *waitdomain.CompositeOperationError
		require.False(t, errors.As(err, &compositeErr))
		require.Zero(t, srv.gets.Load())
	})

	t.Run("error: timeout keeps the created stack", func(t *testing.T) {
		srv := &stackServer{states: []string{"CREATING"}}
		svc := newResourceManagerService(t, srv)

		cfg := waitdomain.WaitConfig{MaxInterval: time.Millisecond, MaxWait: 20 * time.Millisecond}
		res, err := svc.CreateStackAndWaitForState(ctx, createStackArgs("net"), []string{"ACTIVE"}, cfg)
		require.Nil(t, res)
		require.True(t, waitsrv.IsTimeout(err))

		partial, ok := waitdomain.PartialResult(err)
		require.True(t, ok)
		created, ok := partial.(*rmapi.CreateStackResult)
		require.True(t, ok)
		require.Equal(t, "stack-1", created.Stack.ID)
	})
}

func TestResourceManagerService_DeleteStackAndWaitForState(t *testing.T) {
	srv := &stackServer{gone: true}
	svc := newResourceManagerService(t, srv)

	res, err := svc.DeleteStackAndWaitForState(context.Background(), &rmapi.DeleteStackArgs{StackID: "stack-1"}, []string{"DELETED"}, fastWait)
	require.NoError(t, err)
	require.Equal(t, waitdomain.OutcomeNotFound, res.Wait.Outcome)
	require.Equal(t, "stack-1", res.Mutation.StackID)
}

func TestResourceManagerService_ChangeStackCompartmentAndWaitForState(t *testing.T) {
	srv := &stackServer{states: []string{"ACTIVE"}}
	svc := newResourceManagerService(t, srv)

	res, err := svc.ChangeStackCompartmentAndWaitForState(context.Background(), &rmapi.ChangeStackCompartmentArgs{
		StackID: "stack-1",
		Details: &rmapi.ChangeStackCompartmentDetails{CompartmentID: "c2"},
	}, []string{"SUCCEEDED"}, fastWait)
	require.NoError(t, err)
	require.Equal(t, waitdomain.OutcomeMatched, res.Wait.Outcome)

	latest, ok := res.Latest().(*rmapi.GetWorkRequestResult)
	require.True(t, ok)
	require.Equal(t, "wr-move", latest.WorkRequest.ID)
	require.Zero(t, srv.gets.Load())
}

func TestResourceManagerService_Jobs(t *testing.T) {
	ctx := context.Background()
	srv := &stackServer{states: []string{"ACTIVE"}}
	svc := newResourceManagerService(t, srv)

	created, err := svc.CreateJobAndWaitForState(ctx, &rmapi.CreateJobArgs{Details: &rmapi.CreateJobDetails{
		StackID:   "stack-1",
		Operation: rmapi.JobOperationPlan,
	}}, []string{"SUCCEEDED", "FAILED"}, fastWait)
	require.NoError(t, err)
	require.Equal(t, waitdomain.OutcomeMatched, created.Wait.Outcome)
	require.Equal(t, rmapi.JobLifecycleStateSucceeded, created.Wait.Snapshot.Status)

	canceled, err := svc.CancelJobAndWaitForState(ctx, &rmapi.CancelJobArgs{JobID: "job-1"}, []string{"SUCCEEDED"}, fastWait)
	require.NoError(t, err)
	require.Equal(t, "job-1", canceled.Mutation.JobID)
}

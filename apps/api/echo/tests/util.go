package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/hcmut-hub/tkb/apps/api/echo"
	"github.com/hcmut-hub/tkb/core/catalog"
	"github.com/hcmut-hub/tkb/core/schedule"
	notifysvc "github.com/hcmut-hub/tkb/services/notify"
	inmemstate "github.com/hcmut-hub/tkb/storage/state/inmem"
	testutil "github.com/hcmut-hub/tkb/tests"
)

func setup(t *testing.T) (*Server, *inmemstate.Store) {
	conf := testutil.NewConfig()
	logger := testutil.NewLogger()

	catalogSvc := catalog.NewService(conf, testutil.SampleCatalog(), logger)

	repo := inmemstate.NewStore()
	validate, translator := testutil.NewValidate()
	scheduleSvc := schedule.NewService(repo, validate, notifysvc.NewConsoleService(conf), logger)

	return NewServer(ServerDeps{
		Conf:        conf,
		Logger:      logger,
		CatalogSvc:  catalogSvc,
		ScheduleSvc: scheduleSvc,
		Validate:    validate,
		Translator:  translator,
	}), repo
}

type httpErr struct {
	Error interface{} `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func marshalObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshalObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if tt.wantCode == 0 {
		tt.wantCode = http.StatusOK
	}
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

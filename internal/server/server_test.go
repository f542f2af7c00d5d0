package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plutus-labs/schedule3/internal/ingest"
	"github.com/plutus-labs/schedule3/internal/report"
	"github.com/plutus-labs/schedule3/internal/store"
)

const testCSV = `Trial Balance for the year ended 31 March 2026
Level 1 Desc,Level 2 Desc,Amount Current,Amount Previous
Equity Share Capital,,15000000,15000000
Sales,Finished Goods,42000000,36000000
Purchases,Raw Material,18000000,16000000
Salaries and Wages,,6500000,5900000
Cash in Hand,,125000,90000
`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "schedule3.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	ts := httptest.NewServer(New(st, "127.0.0.1:0", "Acme Industries Limited").Handler())
	t.Cleanup(ts.Close)
	return ts
}

func uploadCSV(t *testing.T, ts *httptest.Server, name, body string) store.Batch {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write([]byte(body))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := http.Post(ts.URL+"/api/v1/trialbalance", mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var batch store.Batch
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&batch))
	return batch
}

func TestImportAndListBatches(t *testing.T) {
	ts := newTestServer(t)

	batch := uploadCSV(t, ts, "tb_fy26.csv", testCSV)
	assert.Equal(t, "tb_fy26.csv", batch.SourceFile)
	assert.Equal(t, 5, batch.RowCount)

	resp, err := http.Get(ts.URL + "/api/v1/batches")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var batches []store.Batch
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&batches))
	require.Len(t, batches, 1)
	assert.Equal(t, batch.ID, batches[0].ID)
}

func TestImportRejectsFileWithoutHeader(t *testing.T) {
	ts := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "junk.csv")
	require.NoError(t, err)
	fw.Write([]byte("no,recognizable,columns\n1,2,3\n"))
	require.NoError(t, mw.Close())

	resp, err := http.Post(ts.URL+"/api/v1/trialbalance", mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetStatement(t *testing.T) {
	ts := newTestServer(t)
	uploadCSV(t, ts, "tb.csv", testCSV)

	resp, err := http.Get(ts.URL + "/api/v1/statements/profit-loss")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body statementResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, report.StatementProfitLoss, body.Statement)
	assert.Equal(t, "Statement of Profit and Loss", body.Title)
	assert.NotEmpty(t, body.Lines)
}

func TestGetStatementUnknownName(t *testing.T) {
	ts := newTestServer(t)
	uploadCSV(t, ts, "tb.csv", testCSV)

	resp, err := http.Get(ts.URL + "/api/v1/statements/funds-flow")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetStatementWithoutImports(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/v1/statements/balance-sheet")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestNotesEndpoints(t *testing.T) {
	ts := newTestServer(t)
	uploadCSV(t, ts, "tb.csv", testCSV)

	resp, err := http.Get(ts.URL + "/api/v1/notes")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var allNotes []report.FinancialNote
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&allNotes))
	assert.Len(t, allNotes, 21)

	resp, err = http.Get(ts.URL + "/api/v1/notes/2")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var note report.FinancialNote
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&note))
	assert.Equal(t, "2", note.Number)
	assert.Equal(t, "Share Capital", note.Title)

	resp, err = http.Get(ts.URL + "/api/v1/notes/99")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdjustmentFlowsIntoStatements(t *testing.T) {
	ts := newTestServer(t)
	uploadCSV(t, ts, "tb.csv", testCSV)

	payload := `{"level1":"Audit Fees","amount_current":25000,"narration":"Audit provision"}`
	resp, err := http.Post(ts.URL+"/api/v1/adjustments", "application/json", bytes.NewBufferString(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var adj ingest.Adjustment
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&adj))
	require.NotEmpty(t, adj.ID)

	// The adjusted ledger line must surface in note 19 (Other Expenses).
	resp, err = http.Get(ts.URL + "/api/v1/notes/19")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var note report.FinancialNote
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&note))
	require.NotNil(t, note.Total)
	assert.Equal(t, 25000.0, note.Total.Current)

	// Deleting the adjustment removes it from the evaluation.
	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/api/v1/adjustments/%s", ts.URL, adj.ID), nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestExportEndpoints(t *testing.T) {
	ts := newTestServer(t)
	uploadCSV(t, ts, "tb.csv", testCSV)

	resp, err := http.Get(ts.URL + "/api/v1/export/xlsx")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.Header.Get("Content-Type"))

	resp, err = http.Get(ts.URL + "/api/v1/export/pdf")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

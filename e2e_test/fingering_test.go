//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/jsphweid/fretfinder/cmd"
	"github.com/jsphweid/fretfinder/model"
	"github.com/stretchr/testify/assert"
)

var server *httptest.Server

func TestMain(m *testing.M) {
	if err := cmd.LoadServeDeps(); err != nil {
		panic(err.Error())
	}
	server = httptest.NewServer(cmd.NewRouter())

	exitVal := m.Run()

	server.Close()
	os.Exit(exitVal)
}

func createFingeringReqBody(notes []string, capo int) io.Reader {
	data, err := json.Marshal(model.FingeringRequest{Notes: notes, Capo: capo})
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func postFingering(t *testing.T, notes []string, capo int) model.FingeringResponse {
	resp, err := http.Post(server.URL+"/fingering", "application/json", createFingeringReqBody(notes, capo))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)
	var res model.FingeringResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	return res
}

func TestCMajorE2E(t *testing.T) {
	res := postFingering(t, []string{"c3", "e4", "g4"}, 0)

	assert := assert.New(t)
	assert.True(res.Found)
	assert.Equal(120, res.Candidates)
	assert.Len(res.Fingering, 3)
	assert.Less(res.Ease, 4)
}

func TestFChordUnderCapoE2E(t *testing.T) {
	res := postFingering(t, []string{"f3", "f4", "a4", "c5"}, 1)

	assert := assert.New(t)
	assert.True(res.Found)
	for _, fret := range res.Fingering {
		assert.GreaterOrEqual(fret, 1)
	}
}

func TestSevenNotesE2E(t *testing.T) {
	res := postFingering(t, []string{"c3", "d3", "e3", "f3", "g3", "a3", "b3"}, 0)

	assert := assert.New(t)
	assert.False(res.Found)
	assert.Equal(0, res.Candidates)
}

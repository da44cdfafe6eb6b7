package testkit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertJSONEqual deep-compares two values after normalising both through a
// JSON round-trip, so struct vs map and key order never matter.
func AssertJSONEqual(t *testing.T, expected, actual interface{}) {
	t.Helper()

	expRaw, err := json.Marshal(expected)
	require.NoError(t, err, "marshal expected value")
	actRaw, err := json.Marshal(actual)
	require.NoError(t, err, "marshal actual value")

	var expVal, actVal interface{}
	require.NoError(t, json.Unmarshal(expRaw, &expVal))
	require.NoError(t, json.Unmarshal(actRaw, &actVal))

	assert.Equal(t, expVal, actVal, "JSON-normalised values differ")
}

// AssertAllStubsCalled fails the test if any registered stub was never hit.
func AssertAllStubsCalled(t *testing.T, mt *MockTransport) {
	t.Helper()
	for _, desc := range mt.UncalledStubs() {
		t.Errorf("stub %s was never called", desc)
	}
}

package display

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServicesTable(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, ServicesTable(&out, []Service{
		{Name: "TallyKey", Key: "core.activity_tally", Type: "*activity.Tally"},
	}))
	assert.Contains(t, out.String(), "KEY")
	assert.Contains(t, out.String(), "core.activity_tally  *activity.Tally")

	out.Reset()
	require.NoError(t, ServicesTable(&out, nil))
	assert.Contains(t, out.String(), "No services found")
}

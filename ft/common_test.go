package ft

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Alan-Robertson/qecode-sub000/noise"
	"github.com/Alan-Robertson/qecode-sub000/qecutils"
)

func zeroTable(t *testing.T, n int) *noise.Table {
	t.Helper()
	tbl, err := noise.Identity(n)
	require.NoError(t, err)
	return tbl
}

func defaultCfg() qecutils.RuntimeConfig {
	return qecutils.Default()
}

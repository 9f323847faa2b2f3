package corral_test

import (
	"testing"

	"github.com/on-the-ground/corral_go/corral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLifecycle_LogsEachTransition(t *testing.T) {
	resetCleanups(t)
	logs := withObservedLogger(t)

	a := corral.New[int, counting, error](1)
	lineage := a.Lineage().String()

	b := corral.Move[errAlternate](a)
	var c corral.Corral[int, counting, errAlternate]
	c.Take(b)
	c.Reset()

	d := corral.New[int, counting, error](2)
	_, err := d.Release()
	require.NoError(t, err)

	messages := make([]string, 0, logs.Len())
	for _, e := range logs.All() {
		assert.Equal(t, zapcore.DebugLevel, e.Level)
		assert.Equal(t, "corral_test.counting", e.ContextMap()["kind"])
		messages = append(messages, e.Message)
	}
	require.Equal(t, []string{
		"value corralled",
		"value moved",
		"value released",
		"value taken",
		"value cleaned up",
		"value corralled",
		"value released",
	}, messages)

	for _, e := range logs.All()[:5] {
		assert.Equal(t, lineage, e.ContextMap()["lineage"])
	}
}

func TestLifecycle_RejectedValuesAreNotLogged(t *testing.T) {
	logs := withObservedLogger(t)

	c := corral.New[int, counting, error](-1)
	c.Reset()

	require.Zero(t, logs.Len())
}

func TestSetLogger_Restore(t *testing.T) {
	prev := corral.Logger()

	logger := zap.NewExample()
	restore := corral.SetLogger(logger)
	require.Same(t, logger, corral.Logger())

	restore()
	require.Same(t, prev, corral.Logger())

	restore = corral.SetLogger(nil)
	require.NotNil(t, corral.Logger())
	restore()
}

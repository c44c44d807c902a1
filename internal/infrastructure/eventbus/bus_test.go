package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestBus_EntregaEnOrdenDeSuscripcion(t *testing.T) {
	b := New()
	var got []string
	for _, name := range []string{"a", "b", "c"} {
		_, err := b.Subscribe("t", func(p any) { got = append(got, name+":"+p.(string)) })
		require.NoError(t, err)
	}

	b.Publish("t", "x")
	assert.Equal(t, []string{"a:x", "b:x", "c:x"}, got)
}

func TestBus_UnsubscribeQuitaSoloAlSuscriptorIndicado(t *testing.T) {
	b := New()
	var got []int
	unsubs := make([]func(), 0, 3)
	for i := 0; i < 3; i++ {
		unsub, err := b.Subscribe("t", func(any) { got = append(got, i) })
		require.NoError(t, err)
		unsubs = append(unsubs, unsub)
	}

	// mismos closures (mismo puntero de función): debe quitarse solo el del medio
	unsubs[1]()
	unsubs[1]()
	b.Publish("t", nil)

	assert.Equal(t, []int{0, 2}, got)
	assert.Equal(t, 2, b.Subscribers("t"))
}

func TestBus_BajaDentroDelCallbackNoBloquea(t *testing.T) {
	b := New()
	calls := 0
	var unsub func()
	unsub, err := b.Subscribe("t", func(any) {
		calls++
		unsub()
	})
	require.NoError(t, err)

	b.Publish("t", nil)
	b.Publish("t", nil)
	assert.Equal(t, 1, calls)
}

func TestBus_TopicoSinSuscriptores(t *testing.T) {
	b := New()
	assert.NotPanics(t, func() { b.Publish("vacío", 1) })
	_, err := b.Subscribe("t", nil)
	assert.Error(t, err)
}

package passphrase_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletdemo/ncw-core/internal/passphrase"
)

func TestRandom(t *testing.T) {
	t.Run("is grouped for readability", func(t *testing.T) {
		value, err := passphrase.Random()
		require.NoError(t, err)

		groups := strings.Split(value, "-")
		assert.GreaterOrEqual(t, len(groups), 2)
		for _, group := range groups {
			assert.NotEmpty(t, group)
			assert.LessOrEqual(t, len(group), 4)
		}
	})

	t.Run("successive passphrases differ", func(t *testing.T) {
		first, err := passphrase.Random()
		require.NoError(t, err)
		second, err := passphrase.Random()
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}

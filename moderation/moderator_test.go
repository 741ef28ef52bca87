package moderation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Censor_Masks_Configured_Words(t *testing.T) {
	req := require.New(t)

	moderator, err := NewModerator([]string{"bomb", "attack"}, '*')
	req.NoError(err)

	sanitized, found := moderator.Censor("the bomb is ready for the Attack")
	req.Equal("the **** is ready for the ******", sanitized)
	req.ElementsMatch([]string{"bomb", "attack"}, found)
}

func Test_Censor_Leaves_Clean_Content_Untouched(t *testing.T) {
	req := require.New(t)

	moderator, err := NewModerator([]string{"bomb"}, '*')
	req.NoError(err)

	content := "see you at noon"
	sanitized, found := moderator.Censor(content)
	req.Equal(content, sanitized)
	req.Empty(found)
}

func Test_Censor_Preserves_Rune_Positions(t *testing.T) {
	req := require.New(t)

	moderator, err := NewModerator([]string{"café"}, '#')
	req.NoError(err)

	sanitized, found := moderator.Censor("au Café à midi")
	req.Equal("au #### à midi", sanitized)
	req.Len(found, 1)
}

package helpcenter_test

import (
	"testing"

	"github.com/AlexJubs/helpcenter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelector_CSS(t *testing.T) {
	t.Parallel()

	t.Run("joins tag and classes", func(t *testing.T) {
		t.Parallel()

		sel := helpcenter.Selector{Tag: "article", Class: "preview  condensed"}

		assert.Equal(t, "article.preview.condensed", sel.CSS())
	})

	t.Run("class only", func(t *testing.T) {
		t.Parallel()

		sel := helpcenter.Selector{Class: "richText"}

		assert.Equal(t, ".richText", sel.CSS())
	})

	t.Run("tag only", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "p", helpcenter.Selector{Tag: "p"}.CSS())
	})

	t.Run("empty selector matches everything", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "*", helpcenter.Selector{}.CSS())
	})
}

func TestSiteLayout_Validate(t *testing.T) {
	t.Parallel()

	t.Run("default layout is valid", func(t *testing.T) {
		t.Parallel()

		layout := helpcenter.DefaultLayout()

		require.NoError(t, layout.Validate())
	})

	t.Run("requires content region", func(t *testing.T) {
		t.Parallel()

		layout := helpcenter.DefaultLayout()
		layout.ContentRegion = helpcenter.Selector{Class: "  "}

		err := layout.Validate()

		require.Error(t, err)
		assert.Equal(t, helpcenter.EINVALID, helpcenter.ErrorCode(err))
		assert.Contains(t, helpcenter.ErrorMessage(err), "content region")
	})

	t.Run("requires page link", func(t *testing.T) {
		t.Parallel()

		layout := helpcenter.DefaultLayout()
		layout.PageLink = helpcenter.Selector{}

		err := layout.Validate()

		assert.Equal(t, helpcenter.EINVALID, helpcenter.ErrorCode(err))
	})
}

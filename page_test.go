package helpcenter_test

import (
	"testing"

	"github.com/AlexJubs/helpcenter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticle_SetContent(t *testing.T) {
	t.Parallel()

	t.Run("sets content once", func(t *testing.T) {
		t.Parallel()

		article := &helpcenter.Article{Title: "Pages", Link: "/help/pages"}

		err := article.SetContent(&helpcenter.Content{Text: "body", Source: helpcenter.SourceLLM})

		require.NoError(t, err)
		require.NotNil(t, article.Content)
		assert.Equal(t, "body", article.Content.Text)
	})

	t.Run("rejects second assignment", func(t *testing.T) {
		t.Parallel()

		article := &helpcenter.Article{Link: "/help/pages"}
		require.NoError(t, article.SetContent(&helpcenter.Content{Text: "first"}))

		err := article.SetContent(&helpcenter.Content{Text: "second"})

		require.Error(t, err)
		assert.Equal(t, helpcenter.EINVALID, helpcenter.ErrorCode(err))
		assert.Equal(t, "first", article.Content.Text)
	})
}

func TestResult_Validate(t *testing.T) {
	t.Parallel()

	assert.Error(t, (&helpcenter.Result{}).Validate())
	assert.NoError(t, (&helpcenter.Result{Link: "/help/pages"}).Validate())
}

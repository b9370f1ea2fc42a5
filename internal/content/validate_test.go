package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateReportsMissingSubjectAndBadURL(t *testing.T) {
	t.Parallel()

	feed, err := Decode(strings.NewReader(sampleFeed))
	require.NoError(t, err)

	err = Validate(feed)
	require.Error(t, err)
	msg := err.Error()
	require.Contains(t, msg, "SubjectSupport[accounting]: missing entry")
	require.Contains(t, msg, "Feed.Contenders[1].URL")
	require.NotContains(t, msg, "SubjectSupport[business]")
}

func TestValidateRejectsEmptyListItems(t *testing.T) {
	t.Parallel()

	feed := Default()
	feed.Primary.Strengths = append(feed.Primary.Strengths, "")

	err := Validate(feed)
	require.ErrorContains(t, err, "Feed.Primary.Strengths[4]")
}

func TestValidateAcceptsEmptyLists(t *testing.T) {
	t.Parallel()

	feed := Default()
	feed.Primary.AIFeatures = nil
	feed.Contenders = nil

	require.NoError(t, Validate(feed))
}

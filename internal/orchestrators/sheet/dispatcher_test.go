package sheet_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/godbound-api/internal/errors"
	"github.com/KirkDiggler/godbound-api/internal/orchestrators/sheet"
)

func TestDispatcher(t *testing.T) {
	d := sheet.NewDispatcher()
	var got *sheet.Request

	err := d.Register(sheet.IntentMoraleCheck, func(_ context.Context, req *sheet.Request) (*sheet.Response, error) {
		got = req
		return &sheet.Response{}, nil
	})
	require.NoError(t, err)

	resp, err := d.Dispatch(context.Background(), &sheet.Request{
		Intent:    sheet.IntentMoraleCheck,
		UserID:    "user_1",
		SubjectID: "subject_1",
	})
	require.NoError(t, err)
	assert.Equal(t, sheet.IntentMoraleCheck, resp.Intent)
	assert.Equal(t, "subject_1", got.SubjectID)
	assert.Empty(t, got.Param("missing"))

	_, err = d.Dispatch(context.Background(), &sheet.Request{
		Intent:    sheet.IntentSavingThrow,
		UserID:    "user_1",
		SubjectID: "subject_1",
	})
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Equal(t, string(sheet.IntentSavingThrow), errors.GetMeta(err)["intent"])

	assert.True(t, errors.IsInvalidArgument(d.Register("", nil)))
	assert.True(t, errors.IsInvalidArgument(d.Register(sheet.IntentSavingThrow, nil)))
}

func TestDispatcher_HandlerError(t *testing.T) {
	d := sheet.NewDispatcher()
	require.NoError(t, d.Register(sheet.IntentChooseTactic, func(context.Context, *sheet.Request) (*sheet.Response, error) {
		return nil, errors.FailedPrecondition("no tactics")
	}))

	resp, err := d.Dispatch(context.Background(), &sheet.Request{
		Intent:    sheet.IntentChooseTactic,
		UserID:    "user_1",
		SubjectID: "subject_1",
	})
	assert.Nil(t, resp)
	assert.True(t, errors.IsFailedPrecondition(err))
}

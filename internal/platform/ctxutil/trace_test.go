package ctxutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTraceDataRoundTrip(t *testing.T) {
	ctx := WithTraceData(context.Background(), &TraceData{TraceID: "t-1", RequestID: "r-1"})
	td := GetTraceData(ctx)
	require.NotNil(t, td)
	require.Equal(t, "t-1", td.TraceID)
	require.Equal(t, []interface{}{"trace_id", "t-1", "request_id", "r-1"}, LogFields(ctx))
}

func TestLogFieldsWithoutTraceData(t *testing.T) {
	require.Nil(t, GetTraceData(context.Background()))
	require.Nil(t, LogFields(context.Background()))
	require.Equal(t, []interface{}{"request_id", "r"}, LogFields(WithTraceData(context.Background(), &TraceData{RequestID: "r"})))
}

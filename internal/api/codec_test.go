package api

import (
	"testing"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/matheus3301/wave/internal/messagelog"
)

func TestCodecRegistered(t *testing.T) {
	if encoding.GetCodec(CodecName) == nil {
		t.Fatalf("codec %q not registered", CodecName)
	}
}

func TestCodecKeepsIntegers(t *testing.T) {
	c := structCodec{}
	in := &MessageEvent{
		EventID:          "evt-1",
		OccurredAtUnixMs: 1760600000123,
		Kind:             "message.appended",
		Message:          messagelog.Message{ID: "m1", ConversationID: "chat-1", Text: "hi"},
	}
	data, err := c.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}

	var out MessageEvent
	if err := c.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if out.OccurredAtUnixMs != in.OccurredAtUnixMs || out.EventID != "evt-1" {
		t.Errorf("decoded = %+v", out)
	}
	if out.Message.Text != "hi" || out.Message.ConversationID != "chat-1" {
		t.Errorf("message = %+v", out.Message)
	}
}

func TestCodecWritesProtobufValue(t *testing.T) {
	data, err := structCodec{}.Marshal(&LoginRequest{Identifier: "alex"})
	if err != nil {
		t.Fatal(err)
	}
	var pv structpb.Value
	if err := proto.Unmarshal(data, &pv); err != nil {
		t.Fatal(err)
	}
	got := pv.GetStructValue().GetFields()["identifier"].GetStringValue()
	if got != "alex" {
		t.Errorf("identifier = %q", got)
	}
}

func TestCodecEmptyRequest(t *testing.T) {
	c := structCodec{}
	data, err := c.Marshal(&Empty{})
	if err != nil {
		t.Fatal(err)
	}
	var out Empty
	if err := c.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
}

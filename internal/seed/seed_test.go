package seed

import (
	"strings"
	"testing"
)

func TestDefaultDataset(t *testing.T) {
	ds, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	counts := []struct {
		name string
		got  int
		want int
	}{
		{"chats", len(ds.Chats), 5},
		{"messages", len(ds.Messages), 13},
		{"posts", len(ds.Posts), 3},
		{"reels", len(ds.Reels), 6},
		{"news", len(ds.News), 3},
		{"services", len(ds.Services), 8},
		{"ads", len(ds.Ads), 3},
	}
	for _, c := range counts {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}

	if ds.Chats[0].ID != "1" || ds.Chats[0].Name != "Sarah Johnson" {
		t.Errorf("first chat = %+v, want Sarah Johnson", ds.Chats[0])
	}
	if ds.Profile.Handle != "@alexthompson" {
		t.Errorf("profile handle = %q", ds.Profile.Handle)
	}
}

func TestDefaultIsCached(t *testing.T) {
	a, _ := Default()
	b, _ := Default()
	if a != b {
		t.Error("Default() decoded the seed twice")
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			"duplicate chat",
			"[[chats]]\nid = \"1\"\n[[chats]]\nid = \"1\"\n",
			"duplicate chat id",
		},
		{
			"orphan message",
			"[[chats]]\nid = \"1\"\n[[messages]]\nid = \"1\"\nchat_id = \"9\"\n",
			"unknown chat",
		},
		{
			"duplicate message in chat",
			"[[chats]]\nid = \"1\"\n[[messages]]\nid = \"1\"\nchat_id = \"1\"\n[[messages]]\nid = \"1\"\nchat_id = \"1\"\n",
			"duplicate message id",
		},
		{
			"post and reel share id",
			"[[posts]]\nid = \"x\"\n[[reels]]\nid = \"x\"\n",
			"duplicate feed item id",
		},
		{
			"negative likes",
			"[[reels]]\nid = \"r\"\nlikes = -1\n",
			"negative like count",
		},
		{
			"liked without likes",
			"[[posts]]\nid = \"p\"\nliked = true\n",
			"zero like count",
		},
		{
			"bad toml",
			"[[chats]\n",
			"decode seed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("Parse() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseAllowsSameMessageIDAcrossChats(t *testing.T) {
	data := "[[chats]]\nid = \"1\"\n[[chats]]\nid = \"2\"\n" +
		"[[messages]]\nid = \"1\"\nchat_id = \"1\"\n[[messages]]\nid = \"1\"\nchat_id = \"2\"\n"
	if _, err := Parse([]byte(data)); err != nil {
		t.Errorf("Parse() error = %v", err)
	}
}

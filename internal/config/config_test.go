package config

import (
	"reflect"
	"testing"
)

func TestParseAdminUsernames(t *testing.T) {
	cases := []struct {
		list   string
		legacy string
		want   []string
	}{
		{"@alice, bob ,", "", []string{"alice", "bob"}},
		{"alice,bob", "alice", []string{"alice", "bob"}},
		{"alice", "@carol", []string{"alice", "carol"}},
		{"", "carol", []string{"carol"}},
		{"", "", nil},
		{"alice,alice,@alice", "", []string{"alice"}},
	}

	for _, c := range cases {
		got := parseAdminUsernames(c.list, c.legacy)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("parseAdminUsernames(%q, %q) = %v, ожидалось %v", c.list, c.legacy, got, c.want)
		}
	}
}

func TestIsAdmin(t *testing.T) {
	cfg := &Config{AdminUsernames: []string{"alice", "bob"}}

	if !cfg.IsAdmin("alice") {
		t.Errorf("alice должна быть админом")
	}
	if !cfg.IsAdmin("@bob") {
		t.Errorf("@bob должен распознаваться как админ")
	}
	if cfg.IsAdmin("carol") {
		t.Errorf("carol не админ")
	}
	if cfg.IsAdmin("") {
		t.Errorf("пустой username не админ")
	}
	if cfg.IsAdmin("Alice") {
		t.Errorf("сравнение регистрозависимое")
	}
}

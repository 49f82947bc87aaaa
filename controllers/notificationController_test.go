package controllers

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

// filterMatchesRecipient applies recipientFilter's $in semantics to a single
// notification recipient value.
func filterMatchesRecipient(filter bson.M, to string) bool {
	in := filter["to"].(bson.M)["$in"].([]string)
	for _, v := range in {
		if v == to {
			return true
		}
	}
	return false
}

func TestRecipientFilter(t *testing.T) {
	filter := recipientFilter("64f000000000000000000001", "sales")

	cases := []struct {
		name string
		to   string
		want bool
	}{
		{"own user id", "64f000000000000000000001", true},
		{"own role", "sales", true},
		{"another user id", "64f000000000000000000002", false},
		{"another role", "admin", false},
		{"empty recipient", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := filterMatchesRecipient(filter, tc.to); got != tc.want {
				t.Errorf("recipient %q matched = %v, want %v", tc.to, got, tc.want)
			}
		})
	}
}

package riot

import "testing"

func TestClusterFor(t *testing.T) {
	cases := []struct {
		region string
		want   string
	}{
		{"br1", "americas"},
		{"la1", "americas"},
		{"la2", "americas"},
		{"na1", "americas"},
		{"oc1", "sea"},
		{"eun1", "europe"},
		{"euw1", "europe"},
		{"ru", "europe"},
		{"tr1", "europe"},
		{"kr", "asia"},
		{"jp1", "asia"},
		{"", "europe"},
		{"mordor", "europe"},
	}
	for _, c := range cases {
		if got := ClusterFor(c.region); got != c.want {
			t.Errorf("ClusterFor(%q) = %q, want %q", c.region, got, c.want)
		}
	}
}

package pathx

import "testing"

func TestRel(t *testing.T) {
	cases := []struct {
		base, target, want string
	}{
		{"build", "build", "."},
		{".", "src/core", "src/core"},
		{"src/host", "src/core", "../core"},
		{"a/b", "c", "../../c"},
		{"/work/wks", "/work/prj", "../prj"},
		{"", "src", "src"},
	}
	for _, c := range cases {
		if got := Rel(c.base, c.target); got != c.want {
			t.Errorf("Rel(%q, %q) = %q, want %q", c.base, c.target, got, c.want)
		}
	}
}

func TestJoin(t *testing.T) {
	if got := Join("bin", "MyApp", "Debug"); got != "bin/MyApp/Debug" {
		t.Fatalf("Join = %q, want %q", got, "bin/MyApp/Debug")
	}
	if got := Join("", "obj", "Release"); got != "obj/Release" {
		t.Fatalf("Join with empty fragment = %q, want %q", got, "obj/Release")
	}
}

func TestTranslate(t *testing.T) {
	if got := Translate("obj/MyApp/Debug", `\`); got != `obj\MyApp\Debug` {
		t.Fatalf("Translate = %q, want %q", got, `obj\MyApp\Debug`)
	}
}

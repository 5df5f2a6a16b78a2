package project

import (
	"os"
	"path/filepath"
	"testing"
)

func write(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func relPaths(t *testing.T, root string, files []string) []string {
	t.Helper()
	out := make([]string, len(files))
	for i, f := range files {
		rel, err := filepath.Rel(root, f)
		if err != nil {
			t.Fatal(err)
		}
		out[i] = filepath.ToSlash(rel)
	}
	return out
}

func TestLoadFromMavenDefaults(t *testing.T) {
	root := t.TempDir()
	write(t, root, "pom.xml", "<project></project>")
	write(t, root, "src/main/java/A.java", "class A {}")
	write(t, root, "src/test/java/ATest.java", "class ATest {}")
	write(t, root, "target/generated/B.java", "class B {}")

	proj, err := LoadFrom(root)
	if err != nil {
		t.Fatal(err)
	}
	files, err := proj.JavaFiles()
	if err != nil {
		t.Fatal(err)
	}
	got := relPaths(t, root, files)
	want := []string{"src/main/java/A.java", "src/test/java/ATest.java"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLoadFromSourceDirectoryOverride(t *testing.T) {
	root := t.TempDir()
	write(t, root, "pom.xml",
		"<project><build><sourceDirectory>sources</sourceDirectory></build></project>")
	write(t, root, "sources/A.java", "class A {}")
	write(t, root, "src/main/java/B.java", "class B {}")

	proj, err := LoadFrom(root)
	if err != nil {
		t.Fatal(err)
	}
	files, err := proj.JavaFiles()
	if err != nil {
		t.Fatal(err)
	}
	got := relPaths(t, root, files)
	if len(got) != 1 || got[0] != "sources/A.java" {
		t.Errorf("got %v", got)
	}
}

func TestLoadFromNoPom(t *testing.T) {
	root := t.TempDir()
	write(t, root, "lib/A.java", "class A {}")
	write(t, root, ".git/B.java", "class B {}")
	write(t, root, "build/C.java", "class C {}")

	proj, err := LoadFrom(root)
	if err != nil {
		t.Fatal(err)
	}
	files, err := proj.JavaFiles()
	if err != nil {
		t.Fatal(err)
	}
	got := relPaths(t, root, files)
	if len(got) != 1 || got[0] != "lib/A.java" {
		t.Errorf("got %v", got)
	}
}

func TestFindJavaFiles(t *testing.T) {
	root := t.TempDir()
	write(t, root, "A.java", "class A {}")
	write(t, root, "sub/B.java", "class B {}")

	files, err := FindJavaFiles([]string{
		filepath.Join(root, "A.java"),
		filepath.Join(root, "sub"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("got %v", files)
	}

	if _, err := FindJavaFiles([]string{filepath.Join(root, "missing")}); err == nil {
		t.Error("expected error for missing path")
	}
}

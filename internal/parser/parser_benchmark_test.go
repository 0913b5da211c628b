package parser

import (
	"strings"
	"testing"
)

func BenchmarkParse_ManyStructures(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 200; i++ {
		sb.WriteString("class App.Model.Entity extends App.Model.Base implements App.Named, App.Stamped\n")
		sb.WriteString("  App.Model.Entity find(int id, string[] tags, App.Filter filter)\n")
		sb.WriteString("  void save()\n")
	}
	src := sb.String()
	p := New()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res := p.Parse(src)
		if res.HasErrors() {
			b.Fatal(res.Errors())
		}
	}
}

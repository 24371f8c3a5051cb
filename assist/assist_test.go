package assist

import (
	"strings"
	"testing"

	"github.com/festaperfeita/festa/internal/types"
)

func TestGenerate_NatalContent(t *testing.T) {
	t.Parallel()
	got, err := Generate(types.PartyNatal, types.TemplateCardapio)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(got, "Peru assado") {
		t.Fatalf("expected natal menu, got %q", got)
	}
}

func TestGenerate_EmptyPartyDefaultsToNatal(t *testing.T) {
	t.Parallel()
	got, err := Generate("", types.TemplateDecoracao)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	want, err := Generate(types.PartyNatal, types.TemplateDecoracao)
	if err != nil {
		t.Fatalf("Generate natal: %v", err)
	}
	if got != want {
		t.Fatal("empty party type must resolve to natal content")
	}
}

func TestGenerate_UnknownThemeFallsBackToGeneric(t *testing.T) {
	t.Parallel()
	got, err := Generate(types.PartyType("aniversario"), types.TemplateChecklist)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(got, "Checklist Final da Festa") {
		t.Fatalf("expected generic checklist, got %q", got)
	}
}

func TestGenerate_RejectsUnknownTemplateType(t *testing.T) {
	t.Parallel()
	if _, err := Generate(types.PartyNatal, types.TemplateType("cartaz")); err == nil {
		t.Fatal("expected error for unknown template type")
	}
}

func TestGenerate_AllThemesHaveAllTypes(t *testing.T) {
	t.Parallel()
	themes, err := Themes()
	if err != nil {
		t.Fatalf("Themes: %v", err)
	}
	if len(themes) != 2 {
		t.Fatalf("expected natal and reveillon, got %v", themes)
	}
	all := []types.TemplateType{
		types.TemplateCardapio,
		types.TemplateDecoracao,
		types.TemplatePlaylist,
		types.TemplateChecklist,
	}
	for _, theme := range themes {
		for _, tt := range all {
			if _, err := Generate(theme, tt); err != nil {
				t.Errorf("Generate(%s, %s): %v", theme, tt, err)
			}
		}
	}
}

func TestReply_KeywordRouting(t *testing.T) {
	t.Parallel()
	cases := []struct {
		message string
		want    string
	}{
		{"Quantas bebidas devo comprar para 20 pessoas?", "24 cervejas"},
		{"Dicas de decoração econômica", "DIY com materiais recicláveis"},
		{"Como organizar a mesa de jantar?", "Toalha de mesa"},
		{"Ideias de brincadeiras para a festa", "Amigo Secreto"},
	}
	for _, tc := range cases {
		if got := Reply(tc.message); !strings.Contains(got, tc.want) {
			t.Errorf("Reply(%q) missing %q", tc.message, tc.want)
		}
	}
}

func TestReply_FallbackEchoesMessage(t *testing.T) {
	t.Parallel()
	got := Reply("quanto custa alugar um salão?")
	if !strings.Contains(got, "quanto custa alugar um salão?") {
		t.Fatalf("fallback must echo the question, got %q", got)
	}
}

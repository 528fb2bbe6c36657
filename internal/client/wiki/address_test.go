package wiki

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferAddress(t *testing.T) {
	const title = "Museu Exemplo"

	tests := []struct {
		name    string
		extract string
		want    string
	}{
		{
			name:    "located in",
			extract: "The museum is located in Avenida Paulista, São Paulo. It opened in 1968.",
			want:    "Avenida Paulista, São Paulo",
		},
		{
			name:    "portuguese fica na",
			extract: "O museu fica na Rua XV de Novembro; foi fundado em 1905.",
			want:    "Rua XV de Novembro",
		},
		{
			name:    "situado em",
			extract: "Situado em Belo Horizonte, o museu abriga arte moderna.",
			want:    "Belo Horizonte, o museu abriga arte moderna",
		},
		{
			name:    "street clause",
			extract: "It is one of the oldest museums. Its building faces the Praça da Liberdade and hosts exhibitions.",
			want:    "Its building faces the Praça da Liberdade and hosts exhibitions",
		},
		{
			name:    "street keyword needs a word boundary",
			extract: "Founded by artists in the Roadrunner collective, it shows work from Recife and Olinda.",
			want:    "Recife",
		},
		{
			name:    "city region pair",
			extract: "The museum opened in 1990 in Ouro Preto, Minas Gerais and displays sacred art.",
			want:    "Ouro Preto, Minas Gerais",
		},
		{
			name:    "preposition fallback",
			extract: "A small collection of folk art from Salvador and beyond.",
			want:    "Salvador",
		},
		{
			name:    "multi word preposition fallback",
			extract: "a collection of sculpture in Campos do Jordão",
			want:    "Campos",
		},
		{
			name:    "nothing matches",
			extract: "a collection of modern art and design.",
			want:    title,
		},
		{
			name:    "empty extract",
			extract: "   ",
			want:    title,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferAddress(tt.extract, title))
		})
	}
}

func TestInferAddress_NeverEmpty(t *testing.T) {
	for _, extract := range []string{"", "x", "located in ;", "1234, 5678"} {
		assert.NotEmpty(t, InferAddress(extract, "Title"))
	}
}

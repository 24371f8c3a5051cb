package assist

import (
	"fmt"
	"strings"
)

// SuggestedQuestions are the prompts offered on an empty transcript.
var SuggestedQuestions = []string{
	"Quantas bebidas devo comprar para 20 pessoas?",
	"Dicas de decoração econômica",
	"Como organizar a mesa de jantar?",
	"Ideias de brincadeiras para a festa",
}

const replyBebidas = `Para **20 pessoas**, recomendo:

**Bebidas alcoólicas:**
- 🍺 24 cervejas (considere 1-2 por pessoa)
- 🍷 3 garrafas de vinho
- 🥂 2 garrafas de espumante

**Não alcoólicas:**
- 🥤 4L de refrigerante
- 🧃 2L de suco
- 💧 4L de água

**Dica:** Sempre tenha 20% a mais para emergências!`

const replyDecoracao = `Aqui vão **dicas econômicas** de decoração:

1. **DIY com materiais recicláveis**
   - Garrafas pintadas como vasos
   - Potes de vidro com velas

2. **Natureza**
   - Galhos secos com luzes
   - Flores do jardim
   - Pinhas e folhas

3. **Balões estratégicos**
   - Arcos na entrada
   - Centros de mesa

4. **Iluminação**
   - Pisca-pisca cria clima mágico
   - Velas em diferentes alturas`

const replyMesa = `Para organizar a **mesa de jantar**:

1. **Toalha de mesa** limpa e passada
2. **Centro de mesa** com altura baixa
3. **Talheres** na ordem de uso (fora para dentro)
4. **Copos** à direita: água, vinho
5. **Guardanapos** dobrados elegantemente
6. **Pratos** empilhados se for self-service

**Dica:** Deixe espaço para circulação!`

const replyBrincadeiras = `**Brincadeiras para animar** sua festa:

🎁 **Amigo Secreto**
- Clássico e sempre funciona!

🎤 **Karaokê**
- Músicas temáticas da época

🎲 **Bingo Personalizado**
- Com prêmios divertidos

❓ **Quem sou eu?**
- Personagens famosos

🎈 **Dança das cadeiras**
- Para todas as idades

📝 **Jogo das resoluções**
- Adivinhe de quem é cada meta`

// Reply routes a user message to a canned answer by keyword. Unmatched
// messages get an echo listing what the responder can answer.
func Reply(message string) string {
	m := strings.ToLower(message)

	switch {
	case strings.Contains(m, "bebida"), strings.Contains(m, "beber"):
		return replyBebidas
	case strings.Contains(m, "decoração"), strings.Contains(m, "decorar"):
		return replyDecoracao
	case strings.Contains(m, "mesa"), strings.Contains(m, "jantar"):
		return replyMesa
	case strings.Contains(m, "brincadeira"), strings.Contains(m, "atividade"), strings.Contains(m, "jogo"):
		return replyBrincadeiras
	}

	return fmt.Sprintf(`Entendi sua pergunta sobre "%s".

Para te ajudar melhor, posso falar sobre:
- **Quantidades** de comida e bebida
- **Decoração** e ambientação
- **Organização** da festa
- **Brincadeiras** e atividades

O que você gostaria de saber? 🎉`, message)
}

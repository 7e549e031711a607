package assistant

import "strings"

// rule pairs trigger substrings with the canned reply sent when any of them
// occurs in the lowercased input. Rules are evaluated in order; the first
// match wins.
type rule struct {
	triggers []string
	reply    string
}

// Greeting is the message seeding an empty conversation when the widget
// opens.
const Greeting = "Olá! Sou o GYM Assistant. Como posso ajudar você a gerenciar sua academia hoje? Você pode me perguntar sobre alunos inadimplentes, vendas do dia ou como criar um novo treino."

// FallbackReply is returned when no rule matches.
const FallbackReply = "Desculpe, ainda estou aprendendo. Poderia ser mais específico?"

var rules = []rule{
	{
		triggers: []string{"inadimplente", "deve"},
		reply:    "Atualmente temos 3 alunos com mensalidades atrasadas: Ricardo Santos, Juliana Lima e Marcos Pereira. Deseja que eu gere os links de cobrança?",
	},
	{
		triggers: []string{"venda", "faturamento"},
		reply:    "Hoje você realizou 12 vendas na loja, totalizando R$ 845,00 em suplementos. Excelente desempenho!",
	},
	{
		triggers: []string{"treino", "ficha"},
		reply:    "Para criar um treino, vá na aba 'Treinos' e clique em 'Novo Template'. Se preferir, posso sugerir uma rotina de Hipertrofia.",
	},
}

// Respond maps free-form input to one canned reply. Pure and deterministic
// for a given input.
func Respond(input string) string {
	lower := strings.ToLower(input)
	for _, r := range rules {
		for _, trigger := range r.triggers {
			if strings.Contains(lower, trigger) {
				return r.reply
			}
		}
	}
	return FallbackReply
}

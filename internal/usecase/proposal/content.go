package proposal

import (
	"fmt"
	"strings"
)

// BuildContent собирает текст заявки по шаблону. Результат детерминирован:
// одинаковые входные данные дают одинаковый текст.
func BuildContent(topic, objectives string, sdgs []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Proposal for %s.\n", topic)
	fmt.Fprintf(&b, "Objectives: %s.\n", objectives)
	fmt.Fprintf(&b, "SDGs: %s.\n", strings.Join(sdgs, ", "))
	b.WriteString("(Generated text...)")
	return b.String()
}

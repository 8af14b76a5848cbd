package assistant

import (
	"fmt"
	"strings"
)

// The prompts are written in Spanish, matching the product's locale. Each one
// instructs the model to answer with the bare artifact so responses can be
// applied to the document without post-editing beyond whitespace trimming.

func improveBulletsPrompt(text, jobTitle string) string {
	return fmt.Sprintf(`Eres un experto en redacción de CVs profesionales. Mejora las siguientes viñetas/descripción de experiencia laboral para el puesto de "%s".

Reglas:
- Usa verbos de acción al inicio (Lideré, Desarrollé, Implementé, Optimicé, etc.)
- Incluye métricas y resultados cuantificables cuando sea posible
- Mantén cada viñeta concisa (1-2 líneas)
- Usa el formato con viñetas (• al inicio de cada punto)
- Responde SOLO con el texto mejorado, sin explicaciones ni comentarios adicionales
- Mantén el idioma original del texto

Texto original:
%s`, jobTitle, text)
}

func generateSummaryPrompt(jobTitle, experience string, skills []string) string {
	return fmt.Sprintf(`Eres un experto en redacción de CVs profesionales. Genera un resumen profesional de 2-3 oraciones para un CV.

Datos:
- Experiencia: %s
- Puesto actual/deseado: %s
- Habilidades: %s

Reglas:
- 2-3 oraciones máximo
- Tono profesional pero no genérico
- Menciona años de experiencia, especialización y valor que aporta
- Responde SOLO con el resumen, sin explicaciones
- Usa el idioma español`, experience, jobTitle, strings.Join(skills, ", "))
}

func suggestSkillsPrompt(jobTitle string, currentSkills []string) string {
	return fmt.Sprintf(`Eres un experto en reclutamiento. Sugiere 8-10 habilidades relevantes para el puesto de "%s" que complementen las habilidades existentes.

Habilidades actuales: %s

Reglas:
- Sugiere habilidades que NO estén ya en la lista
- Incluye tanto habilidades técnicas como blandas
- Responde SOLO con una lista separada por comas, sin explicaciones ni numeración
- Ejemplo: React, TypeScript, Gestión de equipos, Comunicación efectiva`, jobTitle, strings.Join(currentSkills, ", "))
}

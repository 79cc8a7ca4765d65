package solver

import "fmt"

const systemInstruction = `Tu es un expert en mathématiques spécialisé dans l'analyse complexe.
Ton but est de résoudre des équations pour l'inconnue 'z'.

Règles de sortie :
1. Identifie le type d'équation.
2. Trouve toutes les racines complexes.
3. Formate la réponse strictement selon le schéma JSON fourni.
4. Pour 'roots', fournis la partie réelle et imaginaire sous forme de nombres flottants pour le graphique.
5. Pour 'explanationSteps', explique la méthode utilisée (discriminant, forme exponentielle, etc.) en français, étape par étape. Utilise un formatage Markdown léger (gras, code) si utile.
6. Pour 'latexSolution', donne la solution finale sous une forme concise (ex: "S = \{ 1+i, 1-i \}").`

func userPrompt(equation string) string {
	return fmt.Sprintf("Résous l'équation complexe suivante dans l'ensemble C: %s.\n"+
		"Je veux les racines exactes (ou approchées si nécessaire) et une explication pas à pas.", equation)
}

// responseSchema constrains the model output to a SolutionResult.
const responseSchema = `{
  "type": "object",
  "properties": {
    "roots": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "real": {"type": "number", "description": "Partie réelle de la racine"},
          "imaginary": {"type": "number", "description": "Partie imaginaire de la racine"},
          "label": {"type": "string", "description": "Nom de la racine, ex: z1"}
        },
        "required": ["real", "imaginary", "label"]
      }
    },
    "latexSolution": {"type": "string", "description": "Résumé mathématique de la solution"},
    "explanationSteps": {
      "type": "array",
      "items": {"type": "string"},
      "description": "Étapes détaillées de la résolution en français"
    },
    "equationType": {"type": "string", "description": "Type mathématique de l'équation"}
  },
  "required": ["roots", "latexSolution", "explanationSteps", "equationType"]
}`

package prompt

// Built-in narrative prompts. The committee dictamens are produced in
// Spanish: the field officers and committees work in Spanish, so the
// templates stay in the language of the final report.

func registerBuiltins(r *Registry) {
	r.Register(&PromptTemplate{
		ID:           IDDebtReasonability,
		Name:         "Debt Reasonability Dictamen",
		Category:     "narrative",
		Version:      "1",
		SystemPrompt: "Actúa como un Analista Senior de Riesgos de una institución de microfinanzas. Respondes con párrafos cortos y técnicos, en español.",
		UserPromptTmpl: `Realiza un análisis técnico de endeudamiento para una solicitud de microcrédito.

Datos Financieros (Post-Desembolso):
- Activos Totales: Q {{printf "%.0f" .TotalAssets}} (Inventario: Q{{printf "%.0f" .InventoryValue}})
- Pasivos Totales: Q {{printf "%.0f" .TotalDebtPostLoan}} (Nueva: Q{{printf "%.0f" .LoanAmount}})
- Patrimonio Neto: Q {{printf "%.0f" .NetWorth}}
- Ventas Anuales: Q {{printf "%.0f" .AnnualSales}}

Indicadores Críticos Calculados:
1. COBERTURA INVENTARIO (Deuda/Inventario):
   - Solicitud sobre Inventario: {{printf "%.1f" .RequestedToInventoryPct}}%
   - Deuda Total sobre Inventario: {{printf "%.1f" .TotalDebtToInventoryPct}}%

2. COBERTURA VENTAS (Deuda/Ventas Anuales):
   - {{printf "%.2f" .TotalDebtToAnnualSales}} años de ventas para pagar la deuda total.

3. APALANCAMIENTO:
   - Deuda/Patrimonio: {{printf "%.1f" .LeverageOverEquityPct}}%.
   - Deuda/Activos: {{printf "%.1f" .LeverageOverAssetsPct}}%.

4. RCD (Capacidad Pago): {{printf "%.2f" .DebtCoverageRatio}}x.

Instrucciones:
- Evalúa la calidad de la estructura de capital.
- ¿El inventario rota lo suficiente para pagar esta deuda?
- Dictamen FINAL de Endeudamiento: "SALUDABLE", "AL LIMITE" o "SOBRE-ENDEUDADO".

Formato: Párrafos cortos y técnicos.`,
		Variables: []PromptVariable{
			{Name: "TotalAssets", Type: "float", Required: true},
			{Name: "InventoryValue", Type: "float", Required: true},
			{Name: "TotalDebtPostLoan", Type: "float", Required: true},
			{Name: "LoanAmount", Type: "float", Required: true},
			{Name: "NetWorth", Type: "float", Required: true},
			{Name: "AnnualSales", Type: "float", Required: true},
			{Name: "RequestedToInventoryPct", Type: "float", Required: true},
			{Name: "TotalDebtToInventoryPct", Type: "float", Required: true},
			{Name: "TotalDebtToAnnualSales", Type: "float", Required: true},
			{Name: "LeverageOverEquityPct", Type: "float", Required: true},
			{Name: "LeverageOverAssetsPct", Type: "float", Required: true},
			{Name: "DebtCoverageRatio", Type: "float", Required: true},
		},
	})

	r.Register(&PromptTemplate{
		ID:           IDSixCs,
		Name:         "Six Cs Committee Dictamen",
		Category:     "narrative",
		Version:      "1",
		SystemPrompt: "Actúa como un Gerente de Créditos de una institución de microfinanzas. Eres crítico y conservador; respondes en español.",
		UserPromptTmpl: `Genera el Dictamen Final de las 6 C's.

Cliente: {{.FullName}}. Negocio: {{.BusinessName}}.
Solicitud: Q {{printf "%.0f" .LoanAmount}}.

Datos Clave:
1. CARÁCTER: {{.CharacterPoints}}/{{.CharacterMax}} pts.
2. CAPACIDAD: SDN Q {{printf "%.0f" .DisposableSurplus}}. RCD {{printf "%.2f" .DebtCoverageRatio}}x.
3. CAPITAL: Patrimonio Q {{printf "%.0f" .NetWorth}}. Apalancamiento {{printf "%.0f" .LeverageOverEquityPct}}%.
4. COLATERAL: Cobertura Garantía {{printf "%.2f" .CommercialCoverage}}x.
5. CONDICIONES: Riesgo Entorno {{.EnvironmentRisk}}.
6. CAPACIDAD EMPRESARIAL: {{printf "%.0f" .BusinessScorePercent}}%.

Instrucciones:
- Analiza brevemente cada punto.
- Sé crítico con la coherencia entre Capital (Patrimonio) y la Solicitud.

OBLIGATORIO AL FINAL:
Debes sugerir un rango de crédito basado en una política conservadora donde la cuota no supere el 70% del SDN y la garantía cubra al menos 1.25x.

Formato de salida al final del texto (en negrita):
**Rango de Crédito Sugerido: Q [Mín] - Q [Máx]**`,
		Variables: []PromptVariable{
			{Name: "FullName", Type: "string", Required: true},
			{Name: "BusinessName", Type: "string", Required: false},
			{Name: "LoanAmount", Type: "float", Required: true},
			{Name: "CharacterPoints", Type: "int", Required: true},
			{Name: "CharacterMax", Type: "int", Required: true},
			{Name: "DisposableSurplus", Type: "float", Required: true},
			{Name: "DebtCoverageRatio", Type: "float", Required: true},
			{Name: "NetWorth", Type: "float", Required: true},
			{Name: "LeverageOverEquityPct", Type: "float", Required: true},
			{Name: "CommercialCoverage", Type: "float", Required: true},
			{Name: "EnvironmentRisk", Type: "string", Required: false},
			{Name: "BusinessScorePercent", Type: "float", Required: true},
		},
	})
}

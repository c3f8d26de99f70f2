package normalize

// Column aliases for each logical field, ordered by resolution preference.
// The registry's export schema drifted across vintages and the same logical
// field shows up under any of these names; new vintages get reviewed here
// rather than patched inline where they are used.
var (
	facilityCodeAliases   = []string{"CO_UNIDADE", "CNES", "CO_CNES", "COUNIDADE"}
	commercialNameAliases = []string{"NO_FANTASIA", "NOFANTASIA"}
	legalNameAliases      = []string{"NO_RAZAO_SOCIAL", "NO_RAZAO_SOCIAL_", "NORAZAOSOCIAL"}
	municipalityAliases   = []string{"CO_MUNICIPIO_GESTOR", "CO_MUNICIPIO", "CO_MUN_GESTOR", "COMUNICIPIOGESTOR"}
	typeCodeAliases       = []string{"TP_UNIDADE", "TP_UNIDADE_", "TPUNIDADE"}
	streetAliases         = []string{"NO_LOGRADOURO", "DS_LOGRADOURO", "NOLOGRADOURO"}
	numberAliases         = []string{"NU_ENDERECO", "DS_NUMERO", "NUENDERECO"}
	districtAliases       = []string{"DS_BAIRRO", "NO_BAIRRO", "DSBAIRRO"}
	postalAliases         = []string{"DS_CEP", "NU_CEP", "CO_CEP", "DSCEP"}
	phoneAliases          = []string{"NU_TELEFONE", "DS_TELEFONE", "NUTELEFONE"}
)

// GovernanceAliases and DeactivationAliases are exported for the
// table-level filters, which need the column (not a resolved value) to
// decide between applying a predicate and passing the table through.
var (
	GovernanceAliases   = []string{"TP_GESTAO", "TP_GESTAO_", "TPGESTAO"}
	DeactivationAliases = []string{"DT_DESATIVACAO", "DT_DESATIVACAO_", "DTDESATIVACAO"}
)

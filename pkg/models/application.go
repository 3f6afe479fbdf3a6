// Package models defines the loan-application aggregate exchanged between the
// intake API, the store and the analysis engine. Every money, percentage and
// count field is a numeric.Number so that half-filled drafts decode cleanly.
package models

import (
	"microfin_intake/pkg/core/numeric"
)

// GpsPoint is a raw coordinate captured by the field officer's device.
type GpsPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PaymentMethod selects the amortization schedule of a loan.
type PaymentMethod string

const (
	PaymentLevel      PaymentMethod = "level"             // fixed annuity quota
	PaymentDeclining  PaymentMethod = "declining_balance" // constant principal, declining interest
	PaymentAtMaturity PaymentMethod = "at_maturity"       // single payment at term end
)

// CreditExperience classifies the applicant's history with lenders.
// It drives the safety margin applied to the disposable surplus.
type CreditExperience string

const (
	ExperienceNew       CreditExperience = "new"
	ExperienceExternal  CreditExperience = "external"
	ExperienceRecurring CreditExperience = "recurring"
)

// VariableItemType marks a seasonal one-off as money in or money out.
type VariableItemType string

const (
	VariableIncome  VariableItemType = "income"
	VariableExpense VariableItemType = "expense"
)

// DisbursementType marks a planned tranche as cash entering or leaving
// the business in its scheduled month.
type DisbursementType string

const (
	DisbursementIn  DisbursementType = "cash_in"
	DisbursementOut DisbursementType = "cash_out"
)

// DebtKind separates business debts from household debts.
type DebtKind string

const (
	DebtBusiness DebtKind = "business"
	DebtFamily   DebtKind = "family"
)

// SalesProfile is one of the three sales tiers (good / regular / bad days).
// Amount is the take per occurrence and Frequency the occurrences per month;
// Period is the officer's label for the tier cadence and is informational
// only, the monthly figure is always amount times frequency.
type SalesProfile struct {
	Amount    numeric.Number `json:"amount"`
	Period    string         `json:"period"`
	Frequency numeric.Number `json:"frequency"`
}

// DisbursementEntry is one tranche of the planned loan usage. Month is
// relative to the projection start (1-based).
type DisbursementEntry struct {
	ID      string           `json:"id"`
	Purpose string           `json:"purpose"`
	Type    DisbursementType `json:"type"`
	Amount  numeric.Number   `json:"amount"`
	Month   int              `json:"month"`
}

// OtherExpense is a free-form fixed business expense line.
type OtherExpense struct {
	ID          string         `json:"id"`
	Description string         `json:"description"`
	Amount      numeric.Number `json:"amount"`
}

// VariableItem is a seasonal income or expense tied to a calendar month.
type VariableItem struct {
	ID      string           `json:"id"`
	Concept string           `json:"concept"`
	Type    VariableItemType `json:"type"`
	Month   string           `json:"month"`
	Amount  numeric.Number   `json:"amount"`
}

// ExistingDebt is a current obligation of the applicant. Consolidate marks
// debts that the requested loan will pay off: their quotas drop out of the
// ongoing debt service, but their balances still count as liabilities.
type ExistingDebt struct {
	ID             string         `json:"id"`
	Creditor       string         `json:"creditor"`
	OriginalAmount numeric.Number `json:"original_amount"`
	CurrentBalance numeric.Number `json:"current_balance"`
	MonthlyQuota   numeric.Number `json:"monthly_quota"`
	Kind           DebtKind       `json:"kind"`
	Consolidate    bool           `json:"consolidate"`
}

// InventoryItem is one stocked product line.
type InventoryItem struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Unit              string         `json:"unit"`
	StockQty          numeric.Number `json:"stock_qty"`
	PurchasePrice     numeric.Number `json:"purchase_price"`
	SalePrice         numeric.Number `json:"sale_price"`
	PurchaseQty       numeric.Number `json:"purchase_qty"`
	PurchaseFrequency numeric.Number `json:"purchase_frequency"`
}

// Supplier is a business supplier contact.
type Supplier struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Phone   string `json:"phone"`
}

// RealEstateAsset is a property declared by the applicant.
type RealEstateAsset struct {
	ID             string         `json:"id"`
	Description    string         `json:"description"`
	Location       string         `json:"location"`
	EstimatedValue numeric.Number `json:"estimated_value"`
	LandArea       numeric.Number `json:"land_area"`
	BuiltArea      numeric.Number `json:"built_area"`
	RegistryNumber string         `json:"registry_number"`
}

// VehicleAsset is a vehicle declared by the applicant.
type VehicleAsset struct {
	ID             string         `json:"id"`
	Description    string         `json:"description"`
	Year           numeric.Number `json:"year"`
	EstimatedValue numeric.Number `json:"estimated_value"`
	PlateNumber    string         `json:"plate_number"`
}

// OtherAsset covers machinery, equipment and anything else of value.
type OtherAsset struct {
	ID             string         `json:"id"`
	Description    string         `json:"description"`
	EstimatedValue numeric.Number `json:"estimated_value"`
	RegistryNumber string         `json:"registry_number"`
}

// RealGuarantee is a pledged collateral item with commercial and
// quick-sale valuations.
type RealGuarantee struct {
	ID               string         `json:"id"`
	Type             string         `json:"type"`
	EstimatedValue   numeric.Number `json:"estimated_value"`
	QuickSaleValue   numeric.Number `json:"quick_sale_value"`
	Description      string         `json:"description"`
	Status           string         `json:"status"`
	RegistryNumber   string         `json:"registry_number"`
	VehicleYear      numeric.Number `json:"vehicle_year"`
	ConstructionArea numeric.Number `json:"construction_area"`
	LandArea         numeric.Number `json:"land_area"`
	Comments         string         `json:"comments"`
}

// FiduciaryGuarantee is a co-signer with their own financial snapshot.
type FiduciaryGuarantee struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	IdentityDocument  string         `json:"identity_document"`
	Phone             string         `json:"phone"`
	Occupation        string         `json:"occupation"`
	Income            numeric.Number `json:"income"`
	Assets            numeric.Number `json:"assets"`
	Debts             numeric.Number `json:"debts"`
	PaymentBehavior   string         `json:"payment_behavior"`
	EstimatedNetWorth numeric.Number `json:"estimated_net_worth"`
	Address           string         `json:"address"`
	Comments          string         `json:"comments"`
}

// PersonalReference is a character reference interviewed by the officer.
type PersonalReference struct {
	ID           string `json:"id"`
	FullName     string `json:"full_name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
	Status       string `json:"status"`
	Comments     string `json:"comments"`
}

// ClientPhoto is a stored photo reference with capture metadata.
type ClientPhoto struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Category  string    `json:"category"`
	Comment   string    `json:"comment"`
	Timestamp string    `json:"timestamp"`
	GPS       *GpsPoint `json:"gps"`
}

// DocumentChecklist tracks which supporting documents were collected.
type DocumentChecklist struct {
	IdentityCard       bool   `json:"identity_card"`
	SpouseIdentityCard bool   `json:"spouse_identity_card"`
	UtilityBill        bool   `json:"utility_bill"`
	RecentInvoices     bool   `json:"recent_invoices"`
	SalesNotebook      bool   `json:"sales_notebook"`
	PropertyTitle      bool   `json:"property_title"`
	TaxID              bool   `json:"tax_id"`
	OtherDocumentsDesc string `json:"other_documents_desc"`
}

// LoanApplication is the full intake record, one JSONB document per client.
// Its sections follow the field workflow: identity, business, capacity,
// inventory and assets, guarantees, character, documentation, supervision
// and committee review.
type LoanApplication struct {
	// Identity and client data.
	OfficialName    string `json:"official_name"`
	Branch          string `json:"branch"`
	OperationNumber string `json:"operation_number"`

	FullName            string         `json:"full_name"`
	IdentityDocument    string         `json:"identity_document"`
	DateOfBirth         string         `json:"date_of_birth"`
	Age                 numeric.Number `json:"age"`
	MaritalStatus       string         `json:"marital_status"`
	Dependents          numeric.Number `json:"dependents"`
	SpouseName          string         `json:"spouse_name"`
	SpouseOccupation    string         `json:"spouse_occupation"`
	HousingType         string         `json:"housing_type"`
	YearsInHousing      numeric.Number `json:"years_in_housing"`
	BusinessPremiseType string         `json:"business_premise_type"`

	BusinessName           string         `json:"business_name"`
	BusinessType           string         `json:"business_type"`
	BusinessSectors        []string       `json:"business_sectors"`
	YearsInBusiness        numeric.Number `json:"years_in_business"`
	MonthlyPaymentCapacity numeric.Number `json:"monthly_payment_capacity"`

	HomeAddress     string    `json:"home_address"`
	BusinessAddress string    `json:"business_address"`
	LocationType    string    `json:"location_type"`
	HomeGPS         *GpsPoint `json:"home_gps"`
	BusinessGPS     *GpsPoint `json:"business_gps"`
	ContactName     string    `json:"contact_name"`
	ContactPhone    string    `json:"contact_phone"`

	// Business profile.
	BusinessOrigin   string         `json:"business_origin"`
	RecentProfitsUse string         `json:"recent_profits_use"`
	ReinvestedAmount numeric.Number `json:"reinvested_amount"`

	ClientRisks           string `json:"client_risks"`
	MitigationMeasures    string `json:"mitigation_measures"`
	BusinessOpportunities string `json:"business_opportunities"`

	DiversificationScore         int `json:"diversification_score"`
	ProfitabilityKnowledgeScore  int `json:"profitability_knowledge_score"`
	OperationsManagementScore    int `json:"operations_management_score"`
	InvestmentPlanQualityScore   int `json:"investment_plan_quality_score"`
	SuccessionPlanningScore      int `json:"succession_planning_score"`

	FixedAssetsValue       numeric.Number `json:"fixed_assets_value"`
	DeclaredInventoryValue numeric.Number `json:"declared_inventory_value"`
	YearCreated            numeric.Number `json:"year_created"`
	YearFormalized         numeric.Number `json:"year_formalized"`

	EmployeesFullTime         numeric.Number `json:"employees_full_time"`
	EmployeesPartTime         numeric.Number `json:"employees_part_time"`
	EmployeesFullTimeLastYear numeric.Number `json:"employees_full_time_last_year"`
	EmployeesPartTimeLastYear numeric.Number `json:"employees_part_time_last_year"`
	FamilyEmployees           numeric.Number `json:"family_employees"`

	SalesGrowth          numeric.Number `json:"sales_growth"`
	SocialEnvGoals       string         `json:"social_env_goals"`
	BusinessObservations string         `json:"business_observations"`

	// Loan terms and payment capacity.
	LoanAmount              numeric.Number `json:"loan_amount"`
	LoanDestination         string         `json:"loan_destination"`
	LoanDestinationDetail   string         `json:"loan_destination_detail"`
	LoanTerm                numeric.Number `json:"loan_term"`
	LoanInterestRate        numeric.Number `json:"loan_interest_rate"`
	LoanPaymentMethod       PaymentMethod  `json:"loan_payment_method"`
	LoanCommission          numeric.Number `json:"loan_commission"`
	LoanCommissionFinancing string         `json:"loan_commission_financing"`

	DisbursementPlan []DisbursementEntry `json:"disbursement_plan"`

	SalesGood    SalesProfile `json:"sales_good"`
	SalesRegular SalesProfile `json:"sales_regular"`
	SalesBad     SalesProfile `json:"sales_bad"`

	LowSalesMonths       []string       `json:"low_sales_months"`
	LowSalesReduction    numeric.Number `json:"low_sales_reduction"`
	HighSalesMonths      []string       `json:"high_sales_months"`
	HighSalesIncrease    numeric.Number `json:"high_sales_increase"`
	SalesCreditPercentage numeric.Number `json:"sales_credit_percentage"`
	SalesCreditTerm       numeric.Number `json:"sales_credit_term"`

	CostOfGoodsSold      numeric.Number `json:"cost_of_goods_sold"`
	ExpensesEmployees    numeric.Number `json:"expenses_employees"`
	ExpensesRent         numeric.Number `json:"expenses_rent"`
	ExpensesUtilities    numeric.Number `json:"expenses_utilities"`
	ExpensesTransport    numeric.Number `json:"expenses_transport"`
	ExpensesMaintenance  numeric.Number `json:"expenses_maintenance"`
	OtherBusinessExpenses []OtherExpense `json:"other_business_expenses"`

	VariableItems []VariableItem `json:"variable_items"`

	FamilyIncome    numeric.Number `json:"family_income"`
	FamilyFood      numeric.Number `json:"family_food"`
	FamilyTransport numeric.Number `json:"family_transport"`
	FamilyEducation numeric.Number `json:"family_education"`
	FamilyUtilities numeric.Number `json:"family_utilities"`
	FamilyComms     numeric.Number `json:"family_comms"`
	FamilyHealth    numeric.Number `json:"family_health"`
	FamilyOther     numeric.Number `json:"family_other"`

	PlannedInvestment numeric.Number `json:"planned_investment"`
	ExistingDebts     []ExistingDebt `json:"existing_debts"`

	CapacityObservations string           `json:"capacity_observations"`
	CreditExperience     CreditExperience `json:"credit_experience"`

	// Inventory, suppliers and assets.
	Inventory        []InventoryItem   `json:"inventory"`
	Suppliers        []Supplier        `json:"suppliers"`
	RealEstateAssets []RealEstateAsset `json:"real_estate_assets"`
	VehicleAssets    []VehicleAsset    `json:"vehicle_assets"`
	OtherAssets      []OtherAsset      `json:"other_assets"`

	// Guarantees.
	RealGuarantees      []RealGuarantee      `json:"real_guarantees"`
	FiduciaryGuarantees []FiduciaryGuarantee `json:"fiduciary_guarantees"`

	// Character.
	CharacterRefScore           int                 `json:"character_ref_score"`
	CharacterPayHistoryScore    int                 `json:"character_pay_history_score"`
	CharacterInformalDebtsScore int                 `json:"character_informal_debts_score"`
	CharacterTransparencyScore  int                 `json:"character_transparency_score"`
	PersonalReferences          []PersonalReference `json:"personal_references"`
	CharacterObservations       string              `json:"character_observations"`

	// Documentation.
	Documents DocumentChecklist `json:"documents"`
	Photos    []ClientPhoto     `json:"photos"`

	// Supervision visit and committee review.
	Supervision SupervisionData `json:"supervision"`
	Review      ReviewData      `json:"review"`
}

// OfficerProfile identifies the user working the application. It arrives
// from the identity layer as plain input; nothing here authenticates.
type OfficerProfile struct {
	UID          string `json:"uid"`
	DisplayName  string `json:"display_name"`
	Email        string `json:"email"`
	Role         string `json:"role"` // admin, regional, agency_manager, officer
	Region       int    `json:"region"`
	Agency       int    `json:"agency"`
	ManagerEmail string `json:"manager_email"`
	Status       string `json:"status"`
}

// ApplicationSummary is one dashboard listing row.
type ApplicationSummary struct {
	ID               string  `json:"id"`
	FullName         string  `json:"full_name"`
	IdentityDocument string  `json:"identity_document"`
	LoanAmount       float64 `json:"loan_amount"`
	Date             string  `json:"date"`
	Status           string  `json:"status"`
	UserID           string  `json:"user_id"`
	UserRegion       int     `json:"user_region"`
	UserAgency       int     `json:"user_agency"`
}

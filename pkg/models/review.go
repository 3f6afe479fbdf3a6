package models

import (
	"microfin_intake/pkg/core/numeric"
)

// SupervisionData records the supervisor's field visit: what was observed at
// the business, the verified weekly figures and the use-of-funds check.
type SupervisionData struct {
	SupervisorName string    `json:"supervisor_name"`
	VisitDate      string    `json:"visit_date"`
	VisitTime      string    `json:"visit_time"`
	VisitPlace     string    `json:"visit_place"`
	VisitGPS       *GpsPoint `json:"visit_gps"`

	SalesEvolution    string `json:"sales_evolution"`
	InventoryLevel    string `json:"inventory_level"`
	BusinessOwnership string `json:"business_ownership"`

	WillingnessToPay string `json:"willingness_to_pay"`
	GuaranteeStatus  string `json:"guarantee_status"`
	GuaranteeComment string `json:"guarantee_comment"`
	RiskLevel        string `json:"risk_level"`

	WeeklySales          numeric.Number `json:"weekly_sales"`
	WeeklyCosts          numeric.Number `json:"weekly_costs"`
	WeeklyFamilyExpenses numeric.Number `json:"weekly_family_expenses"`

	LoanUseCheck        string `json:"loan_use_check"`
	InvestmentStatus    string `json:"investment_status"`
	EvidenceDescription string `json:"evidence_description"`

	Photos []ClientPhoto `json:"photos"`

	Conclusion          string `json:"conclusion"`
	VisitVerification   string `json:"visit_verification"`
	CrossInfoValidation string `json:"cross_info_validation"`
	CapacityValidation  string `json:"capacity_validation"`
}

// ReviewData is the committee stage: generated analyses, officer notes and
// the approved terms. ApprovedAmount and friends default from the requested
// terms on first review; see application handler prefill.
type ReviewData struct {
	DebtReasonabilityAnalysis string `json:"debt_reasonability_analysis"`
	SixCsAnalysis             string `json:"six_cs_analysis"`

	OfficerRisks           string `json:"officer_risks"`
	OfficerOpportunities   string `json:"officer_opportunities"`
	OfficerMitigation      string `json:"officer_mitigation"`
	OfficerRecommendations string `json:"officer_recommendations"`

	CommentsOfficial      string `json:"comments_official"`
	CommentsAgencyManager string `json:"comments_agency_manager"`
	CommentsSupervisor    string `json:"comments_supervisor"`

	CommitteeDecision string `json:"committee_decision"` // approved, approved_with_changes, postponed, rejected
	CommitteeComments string `json:"committee_comments"`

	ApprovedAmount               numeric.Number `json:"approved_amount"`
	ApprovedDestination          string         `json:"approved_destination"`
	ApprovedPaymentMethod        string         `json:"approved_payment_method"`
	ApprovedInterestRate         numeric.Number `json:"approved_interest_rate"`
	ApprovedTerm                 numeric.Number `json:"approved_term"`
	ApprovedCommission           numeric.Number `json:"approved_commission"`
	ApprovedGuaranteeDescription string         `json:"approved_guarantee_description"`
	ApprovedSpecialConditions    string         `json:"approved_special_conditions"`

	ApproverNames string    `json:"approver_names"`
	ApprovalDate  string    `json:"approval_date"`
	ReviewGPS     *GpsPoint `json:"review_gps"`
}

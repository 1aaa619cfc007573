package documents

import (
	"encoding/json"
	"strings"

	"github.com/kanoonai/kanoon-web/internal/backend"
	"github.com/kanoonai/kanoon-web/internal/domain"
)

const (
	noPartiesMessage       = "You must add at least one Receiving Party for an NDA."
	incompletePartyMessage = "Please fill in both name and address for the receiving party."
)

// Document is the bound form of one document type.
type Document interface {
	backend.Generator
	// Check applies the rules the struct tags cannot express.
	Check() error
}

// Party is a named participant of an NDA.
type Party struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type NDA struct {
	PurposeOfDisclosure    string   `form:"nda.purpose_of_disclosure" json:"purpose_of_disclosure" validate:"required"`
	BusinessPurpose        string   `form:"nda.business_purpose" json:"business_purpose" validate:"required"`
	DurationYears          int      `form:"nda.duration_years" json:"duration_years"`
	JurisdictionCity       string   `form:"nda.jurisdiction_city" json:"jurisdiction_city" validate:"required"`
	DisclosingPartyName    string   `form:"nda.disclosing_party_name" json:"-" validate:"required"`
	DisclosingPartyAddress string   `form:"nda.disclosing_party_address" json:"-" validate:"required"`
	ReceivingPartyNames    []string `form:"nda.receiving_party_name" json:"-"`
	ReceivingPartyAddress  []string `form:"nda.receiving_party_address" json:"-"`
}

func (NDA) Endpoint() string { return "/api/v1/document/generate-nda" }

// ReceivingParties pairs the repeated party rows. Blank rows are skipped.
func (n NDA) ReceivingParties() []Party {
	var parties []Party
	for i, name := range n.ReceivingPartyNames {
		var address string
		if i < len(n.ReceivingPartyAddress) {
			address = n.ReceivingPartyAddress[i]
		}
		name, address = strings.TrimSpace(name), strings.TrimSpace(address)
		if name == "" && address == "" {
			continue
		}
		parties = append(parties, Party{Name: name, Address: address})
	}
	return parties
}

func (n NDA) Check() error {
	parties := n.ReceivingParties()
	if len(parties) == 0 {
		return domain.Invalid(noPartiesMessage)
	}
	for _, p := range parties {
		if p.Name == "" || p.Address == "" {
			return domain.Invalid(incompletePartyMessage)
		}
	}
	return nil
}

func (n NDA) MarshalJSON() ([]byte, error) {
	type plain NDA
	return json.Marshal(struct {
		plain
		DisclosingParty  Party   `json:"disclosing_party"`
		ReceivingParties []Party `json:"receiving_parties"`
	}{
		plain:            plain(n),
		DisclosingParty:  Party{Name: n.DisclosingPartyName, Address: n.DisclosingPartyAddress},
		ReceivingParties: n.ReceivingParties(),
	})
}

type Affidavit struct {
	DeponentFullName    string `form:"affidavit.deponent_full_name" json:"deponent_full_name" validate:"required"`
	DeponentAge         int    `form:"affidavit.deponent_age" json:"deponent_age"`
	RelationName        string `form:"affidavit.relation_name" json:"relation_name" validate:"required"`
	DeponentAddress     string `form:"affidavit.deponent_address" json:"deponent_address" validate:"required"`
	PurposeOfAffidavit  string `form:"affidavit.purpose_of_affidavit" json:"purpose_of_affidavit" validate:"required"`
	VerificationPlace   string `form:"affidavit.verification_place" json:"verification_place" validate:"required"`
	IdentifierName      string `form:"affidavit.identifier_name" json:"identifier_name" validate:"required"`
	NotaryName          string `form:"affidavit.notary_name" json:"notary_name" validate:"required"`
	NotaryRegNo         string `form:"affidavit.notary_reg_no" json:"notary_reg_no" validate:"required"`
	NotaryOfficeAddress string `form:"affidavit.notary_office_address" json:"notary_office_address" validate:"required"`
}

func (Affidavit) Endpoint() string { return "/api/v1/document/generate-affidavit" }
func (Affidavit) Check() error     { return nil }

type RentAgreement struct {
	AgreementCity        string `form:"rent.agreement_city" json:"agreement_city" validate:"required"`
	LandlordFullName     string `form:"rent.landlord_full_name" json:"landlord_full_name" validate:"required"`
	LandlordAge          int    `form:"rent.landlord_age" json:"landlord_age"`
	LandlordRelationName string `form:"rent.landlord_relation_name" json:"landlord_relation_name" validate:"required"`
	LandlordAddress      string `form:"rent.landlord_address" json:"landlord_address" validate:"required"`
	LandlordPhone        string `form:"rent.landlord_phone" json:"landlord_phone" validate:"required"`
	TenantFullName       string `form:"rent.tenant_full_name" json:"tenant_full_name" validate:"required"`
	TenantAge            int    `form:"rent.tenant_age" json:"tenant_age"`
	TenantRelationName   string `form:"rent.tenant_relation_name" json:"tenant_relation_name" validate:"required"`
	TenantAddress        string `form:"rent.tenant_address" json:"tenant_address" validate:"required"`
	TenantPhone          string `form:"rent.tenant_phone" json:"tenant_phone" validate:"required"`
	PropertyAddress      string `form:"rent.property_address" json:"property_address" validate:"required"`
	PropertyDescription  string `form:"rent.property_description" json:"property_description" validate:"required"`
	StartDate            string `form:"rent.start_date" json:"start_date" validate:"required"`
	DurationMonths       int    `form:"rent.duration_months" json:"duration_months"`
	MonthlyRent          int    `form:"rent.monthly_rent" json:"monthly_rent"`
	MonthlyRentWords     string `form:"rent.monthly_rent_words" json:"monthly_rent_words" validate:"required"`
	DueDay               int    `form:"rent.due_day" json:"due_day"`
	PaymentMode          string `form:"rent.payment_mode" json:"payment_mode" validate:"required"`
	PaymentAddress       string `form:"rent.payment_address" json:"payment_address" validate:"required"`
	SecurityAmount       int    `form:"rent.security_amount" json:"security_amount"`
	UsageType            string `form:"rent.usage_type" json:"usage_type" validate:"required"`
	NoticePeriod         int    `form:"rent.notice_period" json:"notice_period"`
	JurisdictionCity     string `form:"rent.jurisdiction_city" json:"jurisdiction_city" validate:"required"`
}

func (RentAgreement) Endpoint() string { return "/api/v1/document/generate-rent-agreement" }
func (RentAgreement) Check() error     { return nil }

type SaleDeed struct {
	ExecutionCity       string `form:"sale_deed.execution_city" json:"execution_city" validate:"required"`
	SellerFullName      string `form:"sale_deed.seller_full_name" json:"seller_full_name" validate:"required"`
	SellerAge           int    `form:"sale_deed.seller_age" json:"seller_age"`
	SellerRelationName  string `form:"sale_deed.seller_relation_name" json:"seller_relation_name" validate:"required"`
	SellerAddress       string `form:"sale_deed.seller_address" json:"seller_address" validate:"required"`
	SellerPhone         string `form:"sale_deed.seller_phone" json:"seller_phone" validate:"required"`
	BuyerFullName       string `form:"sale_deed.buyer_full_name" json:"buyer_full_name" validate:"required"`
	BuyerAge            int    `form:"sale_deed.buyer_age" json:"buyer_age"`
	BuyerRelationName   string `form:"sale_deed.buyer_relation_name" json:"buyer_relation_name" validate:"required"`
	BuyerAddress        string `form:"sale_deed.buyer_address" json:"buyer_address" validate:"required"`
	BuyerPhone          string `form:"sale_deed.buyer_phone" json:"buyer_phone" validate:"required"`
	PropertyAddress     string `form:"sale_deed.property_address" json:"property_address" validate:"required"`
	OwnershipDetails    string `form:"sale_deed.ownership_details" json:"ownership_details" validate:"required"`
	SaleAmount          int    `form:"sale_deed.sale_amount" json:"sale_amount"`
	SaleAmountWords     string `form:"sale_deed.sale_amount_words" json:"sale_amount_words" validate:"required"`
	PaymentMode         string `form:"sale_deed.payment_mode" json:"payment_mode" validate:"required"`
	PaymentReference    string `form:"sale_deed.payment_reference" json:"payment_reference"`
	PaymentDate         string `form:"sale_deed.payment_date" json:"payment_date" validate:"required"`
	PaymentAmount       int    `form:"sale_deed.payment_amount" json:"payment_amount"`
	PropertyType        string `form:"sale_deed.property_type" json:"property_type" validate:"required"`
	BoundaryEast        string `form:"sale_deed.boundary_east" json:"boundary_east" validate:"required"`
	BoundaryWest        string `form:"sale_deed.boundary_west" json:"boundary_west" validate:"required"`
	BoundaryNorth       string `form:"sale_deed.boundary_north" json:"boundary_north" validate:"required"`
	BoundarySouth       string `form:"sale_deed.boundary_south" json:"boundary_south" validate:"required"`
	PropertyArea        string `form:"sale_deed.property_area" json:"property_area" validate:"required"`
	JurisdictionCity    string `form:"sale_deed.jurisdiction_city" json:"jurisdiction_city" validate:"required"`
	PropertyDescription string `form:"sale_deed.property_description" json:"property_description" validate:"required"`
	SurveyNumber        string `form:"sale_deed.survey_number" json:"survey_number" validate:"required"`
}

func (SaleDeed) Endpoint() string { return "/api/v1/document/generate-sale-deed" }
func (SaleDeed) Check() error     { return nil }

type LeaseDeed struct {
	ExecutionCity           string `form:"lease_deed.execution_city" json:"execution_city" validate:"required"`
	LessorFullName          string `form:"lease_deed.lessor_full_name" json:"lessor_full_name" validate:"required"`
	LessorAge               int    `form:"lease_deed.lessor_age" json:"lessor_age"`
	LessorRelationName      string `form:"lease_deed.lessor_relation_name" json:"lessor_relation_name" validate:"required"`
	LessorAddress           string `form:"lease_deed.lessor_address" json:"lessor_address" validate:"required"`
	LessorPhone             string `form:"lease_deed.lessor_phone" json:"lessor_phone" validate:"required"`
	LesseeFullName          string `form:"lease_deed.lessee_full_name" json:"lessee_full_name" validate:"required"`
	LesseeAge               int    `form:"lease_deed.lessee_age" json:"lessee_age"`
	LesseeRelationName      string `form:"lease_deed.lessee_relation_name" json:"lessee_relation_name" validate:"required"`
	LesseeAddress           string `form:"lease_deed.lessee_address" json:"lessee_address" validate:"required"`
	LesseePhone             string `form:"lease_deed.lessee_phone" json:"lessee_phone" validate:"required"`
	PropertyAddress         string `form:"lease_deed.property_address" json:"property_address" validate:"required"`
	PropertyDescription     string `form:"lease_deed.property_description" json:"property_description" validate:"required"`
	LeasePurpose            string `form:"lease_deed.lease_purpose" json:"lease_purpose" validate:"required"`
	LeaseStartDate          string `form:"lease_deed.lease_start_date" json:"lease_start_date" validate:"required"`
	LeaseDurationYears      int    `form:"lease_deed.lease_duration_years" json:"lease_duration_years"`
	LeaseEndDate            string `form:"lease_deed.lease_end_date" json:"lease_end_date" validate:"required"`
	LeaseRentAmount         int    `form:"lease_deed.lease_rent_amount" json:"lease_rent_amount"`
	LeaseRentWords          string `form:"lease_deed.lease_rent_words" json:"lease_rent_words" validate:"required"`
	RentDueDay              int    `form:"lease_deed.rent_due_day" json:"rent_due_day"`
	PaymentMode             string `form:"lease_deed.payment_mode" json:"payment_mode" validate:"required"`
	PaymentReference        string `form:"lease_deed.payment_reference" json:"payment_reference"`
	SecurityDepositAmount   int    `form:"lease_deed.security_deposit_amount" json:"security_deposit_amount"`
	TerminationNoticePeriod int    `form:"lease_deed.termination_notice_period" json:"termination_notice_period"`
	DefaultMonths           int    `form:"lease_deed.default_months" json:"default_months"`
	RegistrationBorneBy     string `form:"lease_deed.registration_borne_by" json:"registration_borne_by" validate:"required"`
	JurisdictionCity        string `form:"lease_deed.jurisdiction_city" json:"jurisdiction_city" validate:"required"`
}

func (LeaseDeed) Endpoint() string { return "/api/v1/document/generate-lease-deed" }
func (LeaseDeed) Check() error     { return nil }

// newDocument returns an empty form for the document type value.
func newDocument(value string) (Document, bool) {
	switch value {
	case "nda":
		return &NDA{}, true
	case "affidavit":
		return &Affidavit{}, true
	case "rent":
		return &RentAgreement{}, true
	case "sale_deed":
		return &SaleDeed{}, true
	case "lease_deed":
		return &LeaseDeed{}, true
	}
	return nil, false
}

package documents

import (
	"net/url"

	"github.com/kanoonai/kanoon-web/internal/backend"
	"github.com/kanoonai/kanoon-web/internal/modules/feature"
	"github.com/kanoonai/kanoon-web/internal/routes"
	"github.com/kanoonai/kanoon-web/internal/view"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

const (
	typeField   = "doc_type"
	defaultType = "nda"
	resultID    = "document-result"
	partiesID   = "receiving-parties"

	partyNameKey    = "nda.receiving_party_name"
	partyAddressKey = "nda.receiving_party_address"
)

var partyPath = routes.DocumentGenerator + "/party"

func text(key, label, placeholder string) feature.Input {
	return feature.Input{Key: key, Label: label, Placeholder: placeholder}
}

func number(key, label, placeholder, def string) feature.Input {
	return feature.Input{Key: key, Label: label, Placeholder: placeholder, Type: "number", Default: def}
}

var variants = []feature.Variant{
	{
		Value: "nda",
		Label: "Non-Disclosure Agreement (NDA)",
		Sections: []feature.Section{
			{Legend: "1. Document Details", Inputs: []feature.Input{
				text("nda.purpose_of_disclosure", "Purpose of Disclosure", "e.g., 'Evaluating a potential business collaboration'"),
				text("nda.business_purpose", "Business Purpose", "e.g., 'Software development partnership'"),
				number("nda.duration_years", "Duration (in years)", "e.g., '5'", "5"),
				text("nda.jurisdiction_city", "Jurisdiction (City)", "e.g., 'Mumbai'"),
			}},
			{Legend: "2. Disclosing Party (The one sharing secrets)", Inputs: []feature.Input{
				text("nda.disclosing_party_name", "Full Legal Name", "e.g., 'ABC Innovations Pvt. Ltd.'"),
				text("nda.disclosing_party_address", "Full Address", "e.g., '123 Main St, Bangalore, India'"),
			}},
		},
		Extra: receivingParties,
	},
	{
		Value: "affidavit",
		Label: "General Affidavit",
		Sections: []feature.Section{
			{Legend: "1. Deponent Details (The person making the oath)", Inputs: []feature.Input{
				text("affidavit.deponent_full_name", "Full Legal Name", "e.g., 'Rohan Sharma'"),
				number("affidavit.deponent_age", "Age", "e.g., '35'", "30"),
				text("affidavit.relation_name", "S/o, D/o, W/o (Relation's Name)", "e.g., 'Sunil Sharma'"),
				text("affidavit.deponent_address", "Full Address", "e.g., 'Flat 10, Silver Arch, Pune, Maharashtra'"),
			}},
			{Legend: "2. Affidavit Purpose", Inputs: []feature.Input{
				text("affidavit.purpose_of_affidavit", "Purpose of Affidavit", "e.g., 'To declare a change of name...'"),
			}},
			{Legend: "3. Verification & Notary Details", Inputs: []feature.Input{
				text("affidavit.verification_place", "Verification Place (City)", "e.g., 'Pune'"),
				text("affidavit.identifier_name", "Identifier Name (Person who identified deponent)", "e.g., 'Adv. Priya Singh'"),
				text("affidavit.notary_name", "Notary Public Name", "e.g., 'S. K. Jain'"),
				text("affidavit.notary_reg_no", "Notary Registration No.", "e.g., '1234/2025'"),
				text("affidavit.notary_office_address", "Notary Office Address", "e.g., 'District Court, Pune'"),
			}},
		},
	},
	{
		Value: "rent",
		Label: "Rent Agreement",
		Sections: []feature.Section{
			{Legend: "Agreement", Inputs: []feature.Input{
				text("rent.agreement_city", "Agreement City", "e.g., 'Mumbai'"),
			}},
			{Legend: "1. Landlord Details", Inputs: []feature.Input{
				text("rent.landlord_full_name", "Landlord Full Name", "e.g., 'Mr. Suresh Gupta'"),
				number("rent.landlord_age", "Landlord Age", "", "55"),
				text("rent.landlord_relation_name", "Landlord S/o, D/o, W/o", "e.g., 'Late Mr. Ramesh Gupta'"),
				text("rent.landlord_address", "Landlord Address", "e.g., '101, Marine Drive, Mumbai'"),
				text("rent.landlord_phone", "Landlord Phone", "e.g., '98XXXXXX01'"),
			}},
			{Legend: "2. Tenant Details", Inputs: []feature.Input{
				text("rent.tenant_full_name", "Tenant Full Name", "e.g., 'Ms. Priya Sharma'"),
				number("rent.tenant_age", "Tenant Age", "", "28"),
				text("rent.tenant_relation_name", "Tenant S/o, D/o, W/o", "e.g., 'Mr. Ashok Sharma'"),
				text("rent.tenant_address", "Tenant Address", "e.g., 'A-502, New Horizons, Pune'"),
				text("rent.tenant_phone", "Tenant Phone", "e.g., '98XXXXXX02'"),
			}},
			{Legend: "3. Property Details", Inputs: []feature.Input{
				text("rent.property_address", "Full Property Address", "e.g., 'Flat 2B, Sunshine Apartments, Bandra West, Mumbai'"),
				text("rent.property_description", "Property Description", "e.g., '2BHK, 1st Floor, 1200 sq.ft.'"),
				{Key: "rent.usage_type", Label: "Usage Type", Placeholder: "e.g., 'Residential'", Default: "Residential"},
			}},
			{Legend: "4. Terms & Payment", Inputs: []feature.Input{
				text("rent.start_date", "Start Date (DD/MM/YYYY)", "e.g., '01/12/2025'"),
				number("rent.duration_months", "Duration (in Months)", "", "11"),
				number("rent.monthly_rent", "Monthly Rent (₹)", "", "50000"),
				text("rent.monthly_rent_words", "Monthly Rent (in words)", "e.g., 'Fifty Thousand'"),
				number("rent.due_day", "Rent Due Day (of each month)", "", "5"),
				text("rent.payment_mode", "Payment Mode", "e.g., 'Bank Transfer / NEFT'"),
				text("rent.payment_address", "Payment Address / Details", "e.g., 'HDFC Bank, A/C 1234...'"),
				number("rent.security_amount", "Security Deposit (₹)", "", "200000"),
				number("rent.notice_period", "Notice Period (in Months)", "", "2"),
				text("rent.jurisdiction_city", "Jurisdiction (City)", "e.g., 'Mumbai'"),
			}},
		},
	},
	{
		Value: "sale_deed",
		Label: "Sale Deed Agreement",
		Sections: []feature.Section{
			{Legend: "Execution", Inputs: []feature.Input{
				text("sale_deed.execution_city", "Execution City", "e.g., 'Chennai'"),
			}},
			{Legend: "1. Seller (Vendor) Details", Inputs: []feature.Input{
				text("sale_deed.seller_full_name", "Seller Full Name", "e.g., 'Mr. Arjun Reddy'"),
				number("sale_deed.seller_age", "Seller Age", "", "50"),
				text("sale_deed.seller_relation_name", "Seller S/o, D/o, W/o", "e.g., 'Mr. Krishna Reddy'"),
				text("sale_deed.seller_address", "Seller Address", "e.g., '12, Jubilee Hills, Hyderabad'"),
				text("sale_deed.seller_phone", "Seller Phone", "e.g., '98XXXXXX03'"),
			}},
			{Legend: "2. Buyer (Vendee) Details", Inputs: []feature.Input{
				text("sale_deed.buyer_full_name", "Buyer Full Name", "e.g., 'Mrs. Meera Krishnan'"),
				number("sale_deed.buyer_age", "Buyer Age", "", "40"),
				text("sale_deed.buyer_relation_name", "Buyer S/o, D/o, W/o", "e.g., 'Mr. Ramesh Krishnan'"),
				text("sale_deed.buyer_address", "Buyer Address", "e.g., '34, Anna Nagar, Chennai'"),
				text("sale_deed.buyer_phone", "Buyer Phone", "e.g., '98XXXXXX04'"),
			}},
			{Legend: "3. Property & Sale Details", Inputs: []feature.Input{
				text("sale_deed.property_address", "Full Property Address", "e.g., 'Plot 5, Adyar, Chennai'"),
				text("sale_deed.ownership_details", "Ownership Details", "e.g., 'via Sale Deed dated 10/05/2010'"),
				number("sale_deed.sale_amount", "Total Sale Amount (₹)", "", "10000000"),
				text("sale_deed.sale_amount_words", "Sale Amount (in words)", "e.g., 'One Crore Fifty Lakhs'"),
				text("sale_deed.jurisdiction_city", "Jurisdiction (City)", "e.g., 'Chennai'"),
			}},
			{Legend: "4. Payment Details", Inputs: []feature.Input{
				text("sale_deed.payment_mode", "Payment Mode", "e.g., 'Bank Cheque / Cash'"),
				{Key: "sale_deed.payment_reference", Label: "Reference No. (if any)", Placeholder: "e.g., 'Cheque No. 123456'", Optional: true},
				text("sale_deed.payment_date", "Payment Date", "e.g., '11/11/2025'"),
				number("sale_deed.payment_amount", "Payment Amount (₹)", "", "10000000"),
			}},
			{Legend: "5. Property Schedule (Boundaries & Area)", Inputs: []feature.Input{
				text("sale_deed.property_type", "Property Type", "e.g., 'Residential Plot'"),
				text("sale_deed.property_area", "Property Area (in sq.ft.)", "e.g., '2400 sq.ft.'"),
				text("sale_deed.survey_number", "Survey Number", "e.g., 'Survey No. 78/A'"),
				text("sale_deed.property_description", "Property Description", "e.g., 'Plot No. 5, K-Nagar...'"),
				text("sale_deed.boundary_east", "Boundary (East)", "e.g., 'Public Road'"),
				text("sale_deed.boundary_west", "Boundary (West)", "e.g., 'Property of Mr. X'"),
				text("sale_deed.boundary_north", "Boundary (North)", "e.g., 'Property of Mr. Y'"),
				text("sale_deed.boundary_south", "Boundary (South)", "e.g., 'Park'"),
			}},
		},
	},
	{
		Value: "lease_deed",
		Label: "Lease Deed Agreement",
		Sections: []feature.Section{
			{Legend: "Execution", Inputs: []feature.Input{
				text("lease_deed.execution_city", "Execution City", "e.g., 'Bangalore'"),
			}},
			{Legend: "1. Lessor (Owner) Details", Inputs: []feature.Input{
				text("lease_deed.lessor_full_name", "Lessor Full Name", "e.g., 'Mr. Prakash Rao'"),
				number("lease_deed.lessor_age", "Lessor Age", "", "60"),
				text("lease_deed.lessor_relation_name", "Lessor S/o, D/o, W/o", "e.g., 'Mr. Mohan Rao'"),
				text("lease_deed.lessor_address", "Lessor Address", "e.g., '123, Indiranagar, Bangalore'"),
				text("lease_deed.lessor_phone", "Lessor Phone", "e.g., '98XXXXXX05'"),
			}},
			{Legend: "2. Lessee (Tenant) Details", Inputs: []feature.Input{
				text("lease_deed.lessee_full_name", "Lessee Full Name", "e.g., 'Mr. Vikram Singh'"),
				number("lease_deed.lessee_age", "Lessee Age", "", "35"),
				text("lease_deed.lessee_relation_name", "Lessee S/o, D/o, W/o", "e.g., 'Mr. Anand Singh'"),
				text("lease_deed.lessee_address", "Lessee Address", "e.g., '456, Koramangala, Bangalore'"),
				text("lease_deed.lessee_phone", "Lessee Phone", "e.g., '98XXXXXX06'"),
			}},
			{Legend: "3. Lease Property Details", Inputs: []feature.Input{
				text("lease_deed.property_address", "Full Property Address", "e.g., 'Ground Floor, 123, Indiranagar, Bangalore'"),
				text("lease_deed.property_description", "Property Description", "e.g., 'Commercial office space, 1500 sq.ft.'"),
				{Key: "lease_deed.lease_purpose", Label: "Lease Purpose", Placeholder: "e.g., 'For running a software development office'", Default: "Commercial"},
			}},
			{Legend: "4. Lease Terms & Payment", Inputs: []feature.Input{
				text("lease_deed.lease_start_date", "Lease Start Date", "e.g., '01/01/2026'"),
				number("lease_deed.lease_duration_years", "Lease Duration (in Years)", "", "3"),
				text("lease_deed.lease_end_date", "Lease End Date", "e.g., '31/12/2028'"),
				number("lease_deed.lease_rent_amount", "Lease Rent Amount (₹ per month)", "", "100000"),
				text("lease_deed.lease_rent_words", "Rent (in words)", "e.g., 'One Lakh'"),
				number("lease_deed.rent_due_day", "Rent Due Day (of each month)", "", "5"),
				{Key: "lease_deed.payment_mode", Label: "Payment Mode", Placeholder: "e.g., 'Bank Transfer'", Default: "Bank Transfer"},
				{Key: "lease_deed.payment_reference", Label: "Reference No. (if any)", Placeholder: "e.g., 'Transaction ID / N/A'", Optional: true},
				number("lease_deed.security_deposit_amount", "Security Deposit (₹)", "", "600000"),
				number("lease_deed.termination_notice_period", "Termination Notice Period (in Months)", "", "3"),
				number("lease_deed.default_months", "Rent Default Period (in Months)", "", "2"),
				text("lease_deed.registration_borne_by", "Registration & Stamp Duty Borne By", "e.g., 'Lessee' or 'Both Parties Equally'"),
				text("lease_deed.jurisdiction_city", "Jurisdiction (City)", "e.g., 'Bangalore'"),
			}},
		},
	},
}

// form is the generator form, refilled from values after a plain post.
func form(selected string, values url.Values) g.Node {
	return h.Div(h.Class("card"),
		view.HxForm(routes.DocumentGenerator, "#"+resultID,
			feature.VariantFields(typeField, "Document Type", selected, variants, values),
			view.SubmitButton("Generate Document", "Generating Document..."),
		),
	)
}

func page(selected string, values url.Values, region g.Node) g.Node {
	return h.Div(h.Class("split"),
		form(selected, values),
		h.Div(h.Class("card"),
			h.H3(g.Text("Your Generated Files")),
			h.Div(h.ID(resultID), region),
		),
	)
}

// result renders the outcome of one generation: an error or the links.
func result(links *backend.DownloadLinks, errMsg string) g.Node {
	if errMsg != "" {
		return view.ErrorBanner(errMsg)
	}
	if links == nil {
		return h.P(h.Class("muted"), g.Text("Your download links will appear here."))
	}
	return g.Group{
		view.SuccessBanner("Success! Your documents are ready to download."),
		view.DownloadLinks(links.PDFURL, links.DocxURL),
	}
}

// receivingParties renders the repeatable party rows of the NDA form.
func receivingParties(values url.Values) g.Node {
	names := values[partyNameKey]
	addresses := values[partyAddressKey]
	rows := make([]g.Node, 0, len(names))
	for i, name := range names {
		var address string
		if i < len(addresses) {
			address = addresses[i]
		}
		rows = append(rows, partyRow(name, address))
	}

	return view.Fieldset("3. Receiving Parties (The one(s) receiving secrets)",
		h.Div(h.ID(partiesID), h.Class("party-rows"), g.Group(rows)),
		h.P(h.Class("muted empty-hint"), g.Text("No receiving parties added yet.")),
		h.Button(h.Type("button"), h.Class("btn btn-gold"),
			hx.Get(partyPath),
			hx.Target("#"+partiesID),
			hx.Swap("beforeend"),
			g.Text("Add Receiving Party"),
		),
	)
}

func partyRow(name, address string) g.Node {
	return h.Div(h.Class("party-row"),
		view.Input(view.Field{Name: partyNameKey, Label: "Receiving Party Name", Value: name, Placeholder: "e.g., 'XYZ Solutions'"}),
		view.Input(view.Field{Name: partyAddressKey, Label: "Receiving Party Address", Value: address, Placeholder: "e.g., '456 MG Road, Pune, India'"}),
		h.Button(h.Type("button"), h.Class("btn btn-link remove"),
			g.Attr("hx-on:click", "this.closest('.party-row').remove()"),
			g.Attr("aria-label", "Remove receiving party"),
			g.Text("Remove"),
		),
	)
}

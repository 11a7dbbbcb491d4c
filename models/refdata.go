package models

// Static reference data for the demo firm. Read-only at runtime; client
// status overrides from the store are layered on top by the provider.

var Partners = []Partner{
	{ID: "partner-001", Name: "Robert Johnson", Email: "rjohnson@firmcpa.com"},
	{ID: "partner-002", Name: "Lisa Martinez", Email: "lmartinez@firmcpa.com"},
	{ID: "partner-003", Name: "James Wilson", Email: "jwilson@firmcpa.com"},
}

// Clients with the full contact hierarchy. Partners typically deal with
// owners/CFOs, not AP staff, so every client carries escalation contacts
// where the relationship has them.
var Clients = []Client{
	{
		ID: "client-001", Name: "Henderson & Associates LLC", Industry: "Professional Services",
		PartnerIndex: 0, Status: ClientStatusNormal,
		Contacts: ClientContacts{
			Primary:    Contact{Name: "Karen Williams", Email: "kwilliams@hendersonllc.com", Phone: "5552345678", Role: "AP Coordinator", IsPrimary: true},
			Escalation: &Contact{Name: "Robert Chen", Email: "rchen@hendersonllc.com", Phone: "5552345600", Role: "Controller"},
			Owner:      &Contact{Name: "Margaret Henderson", Email: "mhenderson@hendersonllc.com", Phone: "5552345601", Role: "Managing Partner"},
		},
	},
	{
		ID: "client-002", Name: "Westbrook Manufacturing Inc.", Industry: "Manufacturing",
		PartnerIndex: 0, Status: ClientStatusSlowPayer,
		Contacts: ClientContacts{
			Primary:    Contact{Name: "Janet Moore", Email: "jmoore@westbrookmfg.com", Phone: "5553456789", Role: "Accounts Payable", IsPrimary: true},
			Escalation: &Contact{Name: "Thomas Burke", Email: "tburke@westbrookmfg.com", Phone: "5553456700", Role: "CFO"},
			Owner:      &Contact{Name: "David Westbrook", Email: "dwestbrook@westbrookmfg.com", Phone: "5553456701", Role: "CEO"},
		},
	},
	{
		ID: "client-003", Name: "Pinnacle Real Estate Group", Industry: "Real Estate",
		PartnerIndex: 1, Status: ClientStatusNormal,
		Contacts: ClientContacts{
			Primary:    Contact{Name: "Amanda Foster", Email: "afoster@pinnaclere.com", Phone: "5554567890", Role: "Office Manager", IsPrimary: true},
			Escalation: &Contact{Name: "Michael Torres", Email: "mtorres@pinnaclere.com", Phone: "5554567800", Role: "CFO"},
			Owner:      &Contact{Name: "Sarah Mitchell", Email: "smitchell@pinnaclere.com", Phone: "5554567801", Role: "Managing Partner"},
		},
	},
	{
		ID: "client-004", Name: "Chen Family Dental Practice", Industry: "Healthcare",
		PartnerIndex: 1, Status: ClientStatusSensitive,
		Contacts: ClientContacts{
			Primary: Contact{Name: "Linda Park", Email: "lpark@chenfamilydental.com", Phone: "5555678901", Role: "Practice Manager", IsPrimary: true},
			Owner:   &Contact{Name: "Dr. Michael Chen", Email: "mchen@chenfamilydental.com", Phone: "5555678902", Role: "Owner"},
		},
	},
	{
		ID: "client-005", Name: "Oakwood Senior Living", Industry: "Healthcare",
		PartnerIndex: 2, Status: ClientStatusPaymentArrangement,
		Contacts: ClientContacts{
			Primary:    Contact{Name: "Nancy Reynolds", Email: "nreynolds@oakwoodliving.com", Phone: "5556789012", Role: "Bookkeeper", IsPrimary: true},
			Escalation: &Contact{Name: "Patricia Oakes", Email: "poakes@oakwoodliving.com", Phone: "5556789000", Role: "Executive Director"},
		},
	},
	{
		ID: "client-006", Name: "Thompson Legal Partners", Industry: "Legal Services",
		PartnerIndex: 2, Status: ClientStatusNormal,
		Contacts: ClientContacts{
			Primary:    Contact{Name: "Rebecca Stone", Email: "rstone@thompsonlegal.com", Phone: "5557890123", Role: "Office Administrator", IsPrimary: true},
			Escalation: &Contact{Name: "Mark Davidson", Email: "mdavidson@thompsonlegal.com", Phone: "5557890100", Role: "Controller"},
			Owner:      &Contact{Name: "Jennifer Thompson", Email: "jthompson@thompsonlegal.com", Phone: "5557890101", Role: "Managing Partner"},
		},
	},
	{
		ID: "client-007", Name: "Metro Construction Group", Industry: "Construction",
		PartnerIndex: 0, Status: ClientStatusNormal,
		Contacts: ClientContacts{
			Primary:    Contact{Name: "Steve Martinez", Email: "smartinez@metroconstruction.com", Phone: "5558901234", Role: "Accounts Payable", IsPrimary: true},
			Escalation: &Contact{Name: "Angela Wright", Email: "awright@metroconstruction.com", Phone: "5558901200", Role: "Controller"},
			Owner:      &Contact{Name: "Frank Delgado", Email: "fdelgado@metroconstruction.com", Phone: "5558901201", Role: "President"},
		},
	},
	{
		ID: "client-008", Name: "Sunrise Medical Associates", Industry: "Healthcare",
		PartnerIndex: 1, Status: ClientStatusDisputed,
		Contacts: ClientContacts{
			Primary:    Contact{Name: "Carol Patterson", Email: "cpatterson@sunrisemedical.com", Phone: "5559012345", Role: "Billing Manager", IsPrimary: true},
			Escalation: &Contact{Name: "Dr. James Morton", Email: "jmorton@sunrisemedical.com", Phone: "5559012300", Role: "Medical Director"},
		},
	},
	{
		ID: "client-009", Name: "Coastal Hospitality Inc.", Industry: "Hospitality",
		PartnerIndex: 2, Status: ClientStatusNormal,
		Contacts: ClientContacts{
			Primary:    Contact{Name: "Diana Reyes", Email: "dreyes@coastalhospitality.com", Phone: "5550123456", Role: "AP Manager", IsPrimary: true},
			Escalation: &Contact{Name: "William Chang", Email: "wchang@coastalhospitality.com", Phone: "5550123400", Role: "CFO"},
			Owner:      &Contact{Name: "Richard Coastal", Email: "rcoastal@coastalhospitality.com", Phone: "5550123401", Role: "Owner"},
		},
	},
	{
		ID: "client-010", Name: "Premier Auto Group", Industry: "Automotive",
		PartnerIndex: 0, Status: ClientStatusSlowPayer,
		Contacts: ClientContacts{
			Primary: Contact{Name: "Tony Vega", Email: "tvega@premierauto.com", Phone: "5551234567", Role: "Controller", IsPrimary: true},
			Owner:   &Contact{Name: "Marcus Premier", Email: "mpremier@premierauto.com", Phone: "5551234500", Role: "Owner"},
		},
	},
	{
		ID: "client-011", Name: "Valley Tech Solutions", Industry: "Technology",
		PartnerIndex: 1, Status: ClientStatusNormal,
		Contacts: ClientContacts{
			Primary:    Contact{Name: "Kevin Walsh", Email: "kwalsh@valleytech.com", Phone: "5552345670", Role: "Finance Manager", IsPrimary: true},
			Escalation: &Contact{Name: "Sandra Kim", Email: "skim@valleytech.com", Phone: "5552345600", Role: "VP Finance"},
		},
	},
	{
		ID: "client-012", Name: "Heritage Properties LLC", Industry: "Real Estate",
		PartnerIndex: 2, Status: ClientStatusSensitive,
		Contacts: ClientContacts{
			Primary: Contact{Name: "Beth Crawford", Email: "bcrawford@heritageproperties.com", Phone: "5553456780", Role: "Property Manager", IsPrimary: true},
			Owner:   &Contact{Name: "Charles Heritage III", Email: "cheritage@heritageproperties.com", Phone: "5553456700", Role: "Owner"},
		},
	},
}

// Service descriptions used on generated invoices.
var ServiceDescriptions = []string{
	"Tax Preparation Services",
	"Business Advisory Services",
	"Payroll Processing",
	"Annual Audit Services",
	"Financial Statement Preparation",
	"Bookkeeping & Tax Planning",
	"Monthly Accounting Services",
	"Year-End Tax Estimates",
	"Trust Accounting Services",
	"Quarterly Review Services",
	"Cash Flow Analysis",
	"Budget Preparation",
}

type ExpenseDriverRef struct {
	Name       string
	Vendor     string
	BaseAmount int64
}

// Expense categories matching a typical chart of accounts.
var ExpenseCategories = []ExpenseCategory{
	{ID: "exp-cat-001", Name: "Software & Subscriptions", BudgetAmount: dec(4500)},
	{ID: "exp-cat-002", Name: "Contractor & Temp Staff", BudgetAmount: dec(12000)},
	{ID: "exp-cat-003", Name: "Professional Development", BudgetAmount: dec(3000)},
}

var ExpenseDriverCatalog = map[string][]ExpenseDriverRef{
	"exp-cat-001": {
		{Name: "CRM Software License", Vendor: "Salesforce", BaseAmount: 1200},
		{Name: "Tax Research Database", Vendor: "Thomson Reuters", BaseAmount: 800},
		{Name: "Cloud Storage", Vendor: "Dropbox Business", BaseAmount: 300},
		{Name: "Practice Management Software", Vendor: "CCH Axcess", BaseAmount: 950},
		{Name: "Document Management", Vendor: "SmartVault", BaseAmount: 200},
	},
	"exp-cat-002": {
		{Name: "Tax Season Temp Staff", Vendor: "Robert Half", BaseAmount: 2800},
		{Name: "IT Consultant", Vendor: "TechServe Inc", BaseAmount: 1600},
		{Name: "Bookkeeping Support", Vendor: "Accounting Temps", BaseAmount: 1200},
	},
	"exp-cat-003": {
		{Name: "CPE Conference Registration", Vendor: "AICPA", BaseAmount: 650},
		{Name: "Online Training Subscriptions", Vendor: "Becker", BaseAmount: 400},
		{Name: "Industry Certifications", Vendor: "Various", BaseAmount: 500},
		{Name: "Staff Training Materials", Vendor: "Wiley", BaseAmount: 250},
	},
}

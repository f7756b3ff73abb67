package pipeline

// SampleCSV is the built-in demo dataset: two months of chequing activity
// including a matched $300 self-transfer pair.
const SampleCSV = `Date,Description,Debit,Credit,Balance
2024-01-02,Payroll Deposit,,2800.00,4200.55
2024-01-03,Tim Hortons,4.58,,4195.97
2024-01-04,Rent Downtown Apt,1800.00,,2395.97
2024-01-05,Uber Trip 1234,18.25,,2377.72
2024-01-05,Scotia Savings Transfer,,300.00,2677.72
2024-01-05,Scotia Savings Transfer,300.00,,2377.72
2024-01-06,Groceries - Loblaws,126.38,,2251.34
2024-01-07,Netflix.com,16.99,,2234.35
2024-01-08,Costco Wholesale,210.45,,2023.90
2024-01-10,Shell Canada,62.44,,1961.46
2024-01-15,Insurance Premium,95.12,,1866.34
2024-01-20,Interest Payment,,4.22,1870.56
2024-01-23,Rogers Communications,89.50,,1781.06
2024-01-25,Starbucks Coffee,8.76,,1772.30
2024-01-28,Side Gig Payment,,420.00,2192.30
2024-02-02,Payroll Deposit,,2800.00,4992.30
2024-02-03,Groceries - No Frills,135.12,,4857.18
2024-02-04,Uber Eats,32.55,,4824.63
2024-02-05,Mortgage Payment,1600.00,,3224.63
2024-02-07,Hydro One,82.30,,3142.33
2024-02-09,Spotify P07,11.99,,3130.34
2024-02-10,Costco Wholesale,195.75,,2934.59
2024-02-12,Interest Payment,,4.45,2939.04
2024-02-15,Scotia Visa Payment,450.00,,2489.04
2024-02-18,Shoppers Drug Mart,47.33,,2441.71
2024-02-20,Airbnb Booking,320.00,,2121.71
2024-02-22,Amazon Marketplace,68.90,,2052.81
2024-02-25,Side Gig Payment,,460.00,2512.81
`

// SamplePayload returns the demo dataset as a file payload.
func SamplePayload() FilePayload {
	return FilePayload{Name: "sample.csv", Content: []byte(SampleCSV)}
}

package fallback

// Snapshot values used when an upstream cannot be reached. Order is the
// listing order served by top-N endpoints.

var cryptoSeeds = []cryptoSeed{
	{"BTCUSDT", "BTC", 95141.87, 2.34, 28500000000, 96200, 93800},
	{"ETHUSDT", "ETH", 3332.87, 1.82, 15200000000, 3380, 3280},
	{"BNBUSDT", "BNB", 635.40, 0.95, 2100000000, 642, 628},
	{"SOLUSDT", "SOL", 141.88, 5.67, 3800000000, 145, 135},
	{"XRPUSDT", "XRP", 2.85, 3.21, 4200000000, 2.92, 2.76},
	{"ADAUSDT", "ADA", 1.02, 2.15, 1800000000, 1.05, 0.99},
	{"DOGEUSDT", "DOGE", 0.38, 1.45, 2500000000, 0.39, 0.37},
	{"AVAXUSDT", "AVAX", 42.50, 4.12, 1200000000, 43.8, 40.5},
	{"DOTUSDT", "DOT", 8.95, -0.85, 850000000, 9.15, 8.82},
	{"MATICUSDT", "MATIC", 1.15, 1.92, 920000000, 1.18, 1.12},
	{"LINKUSDT", "LINK", 22.40, 2.67, 780000000, 22.9, 21.8},
	{"LTCUSDT", "LTC", 105.20, 0.45, 650000000, 107, 104},
	{"UNIUSDT", "UNI", 13.85, 3.45, 580000000, 14.2, 13.4},
	{"ATOMUSDT", "ATOM", 11.20, 1.78, 420000000, 11.5, 11.0},
	{"ETCUSDT", "ETC", 32.50, -1.25, 380000000, 33.2, 32.1},
	{"XLMUSDT", "XLM", 0.42, 2.34, 350000000, 0.43, 0.41},
	{"ALGOUSDT", "ALGO", 0.38, 1.56, 320000000, 0.39, 0.37},
	{"VETUSDT", "VET", 0.048, 0.92, 290000000, 0.049, 0.047},
	{"FILUSDT", "FIL", 6.85, 2.18, 270000000, 7.0, 6.7},
	{"TRXUSDT", "TRX", 0.25, 1.34, 450000000, 0.26, 0.24},
}

var stockSeeds = []equitySeed{
	{"AAPL", "Apple Inc.", 185.50, 1.2, 52000000, 2850000000000},
	{"MSFT", "Microsoft Corporation", 390.00, 0.5, 24000000, 2900000000000},
	{"GOOGL", "Alphabet Inc.", 140.50, -0.3, 18000000, 1750000000000},
	{"AMZN", "Amazon.com Inc.", 155.00, -1.0, 45000000, 1600000000000},
	{"NVDA", "NVIDIA Corporation", 540.00, 3.2, 38000000, 1330000000000},
	{"META", "Meta Platforms Inc.", 380.00, 2.1, 15000000, 960000000000},
	{"TSLA", "Tesla Inc.", 215.10, 5.4, 95000000, 680000000000},
	{"BRK.B", "Berkshire Hathaway Inc.", 365.00, 0.2, 3000000, 780000000000},
	{"JPM", "JPMorgan Chase & Co.", 165.00, 0.8, 8000000, 475000000000},
	{"V", "Visa Inc.", 265.00, 1.1, 5500000, 540000000000},
	{"WMT", "Walmart Inc.", 165.50, -0.2, 6000000, 450000000000},
	{"MA", "Mastercard Inc.", 425.00, 0.9, 2500000, 400000000000},
	{"JNJ", "Johnson & Johnson", 160.00, 0.3, 5000000, 385000000000},
	{"PG", "Procter & Gamble Co.", 155.00, 0.1, 4500000, 365000000000},
	{"UNH", "UnitedHealth Group Inc.", 520.00, 1.5, 2800000, 485000000000},
	{"HD", "The Home Depot Inc.", 360.00, 0.7, 3200000, 365000000000},
	{"BAC", "Bank of America Corp.", 35.50, 1.2, 42000000, 280000000000},
	{"XOM", "Exxon Mobil Corporation", 105.00, -0.5, 18000000, 425000000000},
	{"CVX", "Chevron Corporation", 150.00, -0.3, 7000000, 275000000000},
	{"ABBV", "AbbVie Inc.", 165.00, 0.6, 5500000, 290000000000},
	{"PFE", "Pfizer Inc.", 28.50, -1.2, 35000000, 160000000000},
	{"KO", "The Coca-Cola Company", 60.00, 0.4, 12000000, 260000000000},
	{"COST", "Costco Wholesale Corp.", 680.00, 1.8, 1800000, 300000000000},
	{"PEP", "PepsiCo Inc.", 170.00, 0.2, 3500000, 235000000000},
	{"TMO", "Thermo Fisher Scientific", 540.00, 0.9, 1200000, 210000000000},
	{"MRK", "Merck & Co. Inc.", 110.00, 0.5, 8000000, 280000000000},
	{"CSCO", "Cisco Systems Inc.", 52.00, 0.3, 18000000, 210000000000},
	{"ADBE", "Adobe Inc.", 580.00, 2.5, 2200000, 265000000000},
	{"NFLX", "Netflix Inc.", 485.00, 3.1, 4500000, 210000000000},
	{"DIS", "The Walt Disney Company", 95.00, 1.4, 8500000, 175000000000},
	{"INTC", "Intel Corporation", 45.00, -0.8, 35000000, 185000000000},
	{"AMD", "Advanced Micro Devices", 155.00, 2.8, 48000000, 250000000000},
	{"CRM", "Salesforce Inc.", 265.00, 1.6, 5500000, 260000000000},
	{"ORCL", "Oracle Corporation", 115.00, 0.7, 7000000, 315000000000},
	{"NKE", "NIKE Inc.", 105.00, 1.3, 6500000, 160000000000},
	{"T", "AT&T Inc.", 18.50, -0.2, 28000000, 135000000000},
	{"VZ", "Verizon Communications", 40.00, 0.1, 15000000, 168000000000},
	{"CMCSA", "Comcast Corporation", 42.00, 0.4, 14000000, 175000000000},
	{"WFC", "Wells Fargo & Company", 48.00, 0.9, 22000000, 175000000000},
	{"GS", "The Goldman Sachs Group", 385.00, 1.1, 1800000, 130000000000},
	{"MS", "Morgan Stanley", 95.00, 0.8, 6500000, 155000000000},
	{"PYPL", "PayPal Holdings Inc.", 65.00, 2.2, 12000000, 70000000000},
	{"QCOM", "QUALCOMM Inc.", 145.00, 1.5, 7500000, 162000000000},
	{"TXN", "Texas Instruments Inc.", 175.00, 0.6, 3500000, 160000000000},
	{"AVGO", "Broadcom Inc.", 1050.00, 2.1, 1500000, 485000000000},
	{"SBUX", "Starbucks Corporation", 95.00, 0.5, 6000000, 110000000000},
	{"MCD", "McDonald's Corporation", 295.00, 0.3, 2200000, 215000000000},
	{"LOW", "Lowe's Companies Inc.", 230.00, 0.8, 3000000, 140000000000},
	{"CAT", "Caterpillar Inc.", 285.00, 1.2, 2500000, 150000000000},
	{"GE", "General Electric Company", 125.00, 1.7, 5500000, 135000000000},
}

var etfSeeds = []equitySeed{
	{"SPY", "SPDR S&P 500 ETF Trust", 475.00, 0.5, 75000000, 0},
	{"QQQ", "Invesco QQQ Trust", 395.00, 0.8, 42000000, 0},
	{"IWM", "iShares Russell 2000 ETF", 195.00, 0.3, 28000000, 0},
	{"DIA", "SPDR Dow Jones Industrial Average ETF", 375.00, 0.2, 3500000, 0},
	{"VTI", "Vanguard Total Stock Market ETF", 235.00, 0.4, 4000000, 0},
	{"VOO", "Vanguard S&P 500 ETF", 435.00, 0.5, 5500000, 0},
	{"IVV", "iShares Core S&P 500 ETF", 475.00, 0.5, 4200000, 0},
	{"VEA", "Vanguard FTSE Developed Markets ETF", 48.00, 0.2, 8500000, 0},
	{"VWO", "Vanguard FTSE Emerging Markets ETF", 42.00, -0.3, 12000000, 0},
	{"EFA", "iShares MSCI EAFE ETF", 75.00, 0.1, 18000000, 0},
	{"XLF", "Financial Select Sector SPDR Fund", 38.50, 0.7, 55000000, 0},
	{"XLK", "Technology Select Sector SPDR Fund", 185.00, 1.2, 8500000, 0},
	{"XLE", "Energy Select Sector SPDR Fund", 85.00, -0.5, 22000000, 0},
	{"XLV", "Health Care Select Sector SPDR Fund", 135.00, 0.3, 8000000, 0},
	{"XLI", "Industrial Select Sector SPDR Fund", 115.00, 0.6, 9500000, 0},
	{"XLP", "Consumer Staples Select Sector SPDR", 75.00, 0.1, 8500000, 0},
	{"XLY", "Consumer Discretionary Select Sector SPDR", 175.00, 0.9, 4500000, 0},
	{"XLU", "Utilities Select Sector SPDR Fund", 68.00, -0.2, 12000000, 0},
	{"XLB", "Materials Select Sector SPDR Fund", 85.00, 0.4, 4200000, 0},
	{"XLRE", "Real Estate Select Sector SPDR Fund", 42.00, 0.2, 5500000, 0},
	{"VGT", "Vanguard Information Technology ETF", 485.00, 1.1, 650000, 0},
	{"VHT", "Vanguard Health Care ETF", 255.00, 0.4, 420000, 0},
	{"VFH", "Vanguard Financials ETF", 95.00, 0.6, 850000, 0},
	{"GLD", "SPDR Gold Shares", 185.00, 0.3, 8500000, 0},
	{"SLV", "iShares Silver Trust", 22.50, 0.8, 18000000, 0},
}

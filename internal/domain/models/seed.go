package models

// SeedStaff is written to the store on first run when the staff collection
// comes up empty. These are the factory's real opening balances.
var SeedStaff = []Staff{
	{ID: "1", Name: "হাসান", Role: "অপারেটর", Salary: 20000, Advance: 11500, Present: 24},
	{ID: "2", Name: "মেহেদি", Role: "ডিজাইনার", Salary: 25000, Advance: 500, Present: 4},
	{ID: "3", Name: "রিয়াজ", Role: "অপারেটর", Salary: 20000, Advance: 13012, Present: 23},
	{ID: "4", Name: "শিতল", Role: "অপারেটর", Salary: 18000, Advance: 8613, Present: 24},
	{ID: "5", Name: "রাখিব", Role: "সহকারী", Salary: 13000, Advance: 17481, Present: 18},
	{ID: "6", Name: "শান্ত", Role: "সহকারী", Salary: 11000, Advance: 6000, Present: 21},
	{ID: "7", Name: "সিয়াম", Role: "অপারেটর", Salary: 15600, Advance: 500, Present: 1},
	{ID: "8", Name: "দিগন্ত", Role: "হেল্পার", Salary: 8000, Advance: 1000, Present: 11},
	{ID: "9", Name: "আমেনা", Role: "হেল্পার", Salary: 8000, Advance: 7839, Present: 20},
	{ID: "10", Name: "ইতি", Role: "হেল্পার", Salary: 7000, Advance: 1623, Present: 12},
	{ID: "11", Name: "সবুজ", Role: "হেল্পার", Salary: 8000, Advance: 2500, Present: 11},
	{ID: "12", Name: "নাহিদ", Role: "অপারেটর", Salary: 10000, Advance: 400, Present: 10},
	{ID: "13", Name: "ইমন", Role: "অপারেটর", Salary: 10000, Advance: 2000, Present: 6},
}

// SeedThreads is the matching bootstrap dataset for the thread inventory.
var SeedThreads = []Thread{
	{ID: "t1", SN: 1, Code: "C-20", Name: "Golden", Stock: 180},
	{ID: "t2", SN: 2, Code: "C-22", Name: "Pest", Stock: 185},
	{ID: "t3", SN: 3, Code: "W-122", Name: "Merun", Stock: 140},
	{ID: "t4", SN: 4, Code: "W-0011", Name: "Black", Stock: 95, Out: 12},
	{ID: "t5", SN: 5, Code: "W-0010", Name: "White", Stock: 100, Out: 3},
	{ID: "t6", SN: 6, Code: "C-30", Name: "Red", Stock: 288, Out: 3},
	{ID: "t7", SN: 7, Code: "W-179", Name: "Golden", Stock: 85},
	{ID: "t8", SN: 8, Code: "C-23", Name: "Seola", Stock: 140},
	{ID: "t9", SN: 9, Code: "C-21", Name: "Angur", Stock: 170},
	{ID: "t10", SN: 10, Code: "C-16", Name: "Petrol", Stock: 60},
	{ID: "t11", SN: 11, Code: "C-14", Name: "Merun", Stock: 40},
	{ID: "t12", SN: 12, Code: "C-12", Name: "Akashi", Stock: 85},
	{ID: "t13", SN: 13, Code: "C-10", Name: "Gray", Stock: 130},
	{ID: "t14", SN: 14, Code: "W-002", Name: "Yellow", Stock: 10},
	{ID: "t15", SN: 15, Code: "W-506", Name: "Green", Stock: 12},
	{ID: "t16", SN: 16, Code: "W-242", Name: "Blue", Stock: 20, Out: 5},
	{ID: "t17", SN: 17, Code: "T-404", Name: "Deep Akasi", Stock: 20, Out: 5},
	{ID: "t18", SN: 18, Code: "W-0072", Name: "Silver", Stock: 10},
}

package catalog

// defaultPriceList is the stock size grid the business starts from.
// Amounts are in kopecks.
var defaultPriceList = []EntryParams{
	{Size: "20х30", CostPrice: 17000, SellPrice: 42000, FinishCost: 3000, FinishPrice: 8000, PackagingCost: 3000, PackagingPrice: 9000, FrameACost: 18000, FrameAPrice: 36000, FrameBCost: 13000, FrameBPrice: 26000},
	{Size: "25х30", CostPrice: 18000, SellPrice: 52000, FinishCost: 3000, FinishPrice: 8000, PackagingCost: 3000, PackagingPrice: 9000, FrameACost: 20000, FrameAPrice: 39000, FrameBCost: 14500, FrameBPrice: 29000},
	{Size: "30х35", CostPrice: 22000, SellPrice: 58000, FinishCost: 3000, FinishPrice: 10000, PackagingCost: 3000, PackagingPrice: 11000, FrameACost: 23500, FrameAPrice: 44000, FrameBCost: 17000, FrameBPrice: 34000},
	{Size: "30х40", CostPrice: 24000, SellPrice: 65000, FinishCost: 3000, FinishPrice: 10000, PackagingCost: 3000, PackagingPrice: 11000, FrameACost: 25000, FrameAPrice: 49000, FrameBCost: 18000, FrameBPrice: 38000},
	{Size: "30х45", CostPrice: 25000, SellPrice: 75000, FinishCost: 3000, FinishPrice: 10000, PackagingCost: 3000, PackagingPrice: 12000, FrameACost: 27000, FrameAPrice: 54000, FrameBCost: 19500, FrameBPrice: 40000},
	{Size: "35х45", CostPrice: 26000, SellPrice: 85000, FinishCost: 3000, FinishPrice: 10000, PackagingCost: 3500, PackagingPrice: 12000, FrameACost: 29000, FrameAPrice: 58000, FrameBCost: 21000, FrameBPrice: 42000},
	{Size: "35х50", CostPrice: 27500, SellPrice: 95000, FinishCost: 3000, FinishPrice: 10000, PackagingCost: 3500, PackagingPrice: 12000, FrameACost: 30500, FrameAPrice: 61000, FrameBCost: 22000, FrameBPrice: 44000},
	{Size: "40х50", CostPrice: 29000, SellPrice: 105000, FinishCost: 3500, FinishPrice: 12000, PackagingCost: 3500, PackagingPrice: 13000, FrameACost: 32500, FrameAPrice: 65000, FrameBCost: 23500, FrameBPrice: 47000},
	{Size: "40х60", CostPrice: 34000, SellPrice: 118000, FinishCost: 4000, FinishPrice: 12000, PackagingCost: 3500, PackagingPrice: 13000, FrameACost: 36000, FrameAPrice: 72000, FrameBCost: 26000, FrameBPrice: 52000},
	{Size: "50х60", CostPrice: 37000, SellPrice: 128000, FinishCost: 4500, FinishPrice: 13000, PackagingCost: 5000, PackagingPrice: 14000, FrameACost: 39500, FrameAPrice: 79000, FrameBCost: 28500, FrameBPrice: 57000},
	{Size: "50х70", CostPrice: 42500, SellPrice: 138000, FinishCost: 5000, FinishPrice: 13000, PackagingCost: 6000, PackagingPrice: 14000, FrameACost: 43000, FrameAPrice: 86000, FrameBCost: 31000, FrameBPrice: 62000},
	{Size: "50х75", CostPrice: 45500, SellPrice: 148000, FinishCost: 5000, FinishPrice: 13000, PackagingCost: 6000, PackagingPrice: 14000, FrameACost: 45000, FrameAPrice: 90000, FrameBCost: 32500, FrameBPrice: 65000},
	{Size: "60х70", CostPrice: 51000, SellPrice: 160000, FinishCost: 6500, FinishPrice: 14000, PackagingCost: 6000, PackagingPrice: 15000, FrameACost: 47000, FrameAPrice: 95000, FrameBCost: 34000, FrameBPrice: 70000},
	{Size: "60х80", CostPrice: 57500, SellPrice: 175000, FinishCost: 7000, FinishPrice: 14000, PackagingCost: 6500, PackagingPrice: 15000, FrameACost: 50500, FrameAPrice: 101000, FrameBCost: 36500, FrameBPrice: 73000},
	{Size: "60х90", CostPrice: 64000, SellPrice: 189000, FinishCost: 7500, FinishPrice: 14000, PackagingCost: 6500, PackagingPrice: 16000, FrameACost: 54000, FrameAPrice: 108000, FrameBCost: 39000, FrameBPrice: 75000},
	{Size: "70х80", CostPrice: 67500, SellPrice: 189000, FinishCost: 8000, FinishPrice: 14000, PackagingCost: 12000, PackagingPrice: 16000, FrameACost: 54000, FrameAPrice: 108000, FrameBCost: 39000, FrameBPrice: 75000},
	{Size: "70х90", CostPrice: 75500, SellPrice: 198000, FinishCost: 8500, FinishPrice: 15000, PackagingCost: 12000, PackagingPrice: 17000, FrameACost: 57500, FrameAPrice: 115000, FrameBCost: 41500, FrameBPrice: 78000},
	{Size: "70х100", CostPrice: 83500, SellPrice: 205000, FinishCost: 9000, FinishPrice: 18000, PackagingCost: 13500, PackagingPrice: 21000, FrameACost: 61000, FrameAPrice: 122000, FrameBCost: 44000, FrameBPrice: 83000},
	{Size: "80х100", CostPrice: 96000, SellPrice: 219000, FinishCost: 10500, FinishPrice: 19000, PackagingCost: 13500, PackagingPrice: 22000, FrameACost: 65000, FrameAPrice: 130000, FrameBCost: 47000, FrameBPrice: 94000},
	{Size: "80х120", CostPrice: 114500, SellPrice: 249000, FinishCost: 12000, FinishPrice: 23000, PackagingCost: 14000, PackagingPrice: 26000, FrameACost: 72000, FrameAPrice: 144000, FrameBCost: 52000, FrameBPrice: 104000},
	{Size: "90х120", CostPrice: 128000, SellPrice: 269000, FinishCost: 14000, FinishPrice: 25000, PackagingCost: 15500, PackagingPrice: 28000, FrameACost: 75500, FrameAPrice: 151000, FrameBCost: 54500, FrameBPrice: 109000},
	{Size: "100х150", CostPrice: 178500, SellPrice: 324000, FinishCost: 18500, FinishPrice: 34000, PackagingCost: 26500, PackagingPrice: 39000, FrameACost: 90000, FrameAPrice: 180000, FrameBCost: 65000, FrameBPrice: 130000},
}

package market

import "ladrillo/server/internal/models"

// MetroStations is the Santiago Metro reference set (lines 1 through 6
// plus confirmed L7 stations), each with approximate coordinates.
var MetroStations = []models.MetroStation{
	// Line 1 — Los Dominicos to San Pablo
	{Name: "Los Dominicos", Line: "L1", Latitude: -33.4101, Longitude: -70.5241},
	{Name: "Hernando de Magallanes", Line: "L1", Latitude: -33.4082, Longitude: -70.5359},
	{Name: "Manquehue", Line: "L1", Latitude: -33.4028, Longitude: -70.5480},
	{Name: "Escuela Militar", Line: "L1", Latitude: -33.4025, Longitude: -70.5585},
	{Name: "Alcántara", Line: "L1", Latitude: -33.4053, Longitude: -70.5695},
	{Name: "El Golf", Line: "L1", Latitude: -33.4101, Longitude: -70.5804},
	{Name: "Tobalaba", Line: "L1", Latitude: -33.4187, Longitude: -70.5893},
	{Name: "Los Leones", Line: "L1", Latitude: -33.4230, Longitude: -70.5982},
	{Name: "Pedro de Valdivia", Line: "L1", Latitude: -33.4251, Longitude: -70.6093},
	{Name: "Manuel Montt", Line: "L1", Latitude: -33.4262, Longitude: -70.6186},
	{Name: "Salvador", Line: "L1", Latitude: -33.4310, Longitude: -70.6274},
	{Name: "Baquedano", Line: "L1", Latitude: -33.4375, Longitude: -70.6350},
	{Name: "Universidad Católica", Line: "L1", Latitude: -33.4417, Longitude: -70.6421},
	{Name: "Santa Lucía", Line: "L1", Latitude: -33.4426, Longitude: -70.6478},
	{Name: "Universidad de Chile", Line: "L1", Latitude: -33.4432, Longitude: -70.6536},
	{Name: "La Moneda", Line: "L1", Latitude: -33.4427, Longitude: -70.6602},
	{Name: "Los Héroes", Line: "L1", Latitude: -33.4467, Longitude: -70.6656},
	{Name: "República", Line: "L1", Latitude: -33.4503, Longitude: -70.6715},
	{Name: "Estación Central", Line: "L1", Latitude: -33.4527, Longitude: -70.6786},
	{Name: "Unión Latinoamericana", Line: "L1", Latitude: -33.4539, Longitude: -70.6870},
	{Name: "Alberto Hurtado", Line: "L1", Latitude: -33.4556, Longitude: -70.6969},
	{Name: "Ecuador", Line: "L1", Latitude: -33.4586, Longitude: -70.7051},
	{Name: "Las Rejas", Line: "L1", Latitude: -33.4631, Longitude: -70.7157},
	{Name: "Pajaritos", Line: "L1", Latitude: -33.4685, Longitude: -70.7289},
	{Name: "Del Sol", Line: "L1", Latitude: -33.4688, Longitude: -70.7430},
	{Name: "Monte Tabor", Line: "L1", Latitude: -33.4687, Longitude: -70.7522},
	{Name: "Santiago Bueras", Line: "L1", Latitude: -33.4688, Longitude: -70.7618},
	{Name: "San Pablo", Line: "L1", Latitude: -33.4688, Longitude: -70.7730},

	// Line 2 — Vespucio Norte to La Cisterna
	{Name: "Vespucio Norte", Line: "L2", Latitude: -33.3900, Longitude: -70.6200},
	{Name: "Zapadores", Line: "L2", Latitude: -33.3960, Longitude: -70.6212},
	{Name: "Dorsal", Line: "L2", Latitude: -33.4050, Longitude: -70.6240},
	{Name: "Einstein", Line: "L2", Latitude: -33.4130, Longitude: -70.6275},
	{Name: "Cerro Blanco", Line: "L2", Latitude: -33.4190, Longitude: -70.6345},
	{Name: "Patronato", Line: "L2", Latitude: -33.4260, Longitude: -70.6392},
	{Name: "Puente Cal y Canto", Line: "L2", Latitude: -33.4333, Longitude: -70.6440},
	{Name: "Santa Ana", Line: "L2", Latitude: -33.4409, Longitude: -70.6505},
	{Name: "Parque O'Higgins", Line: "L2", Latitude: -33.4630, Longitude: -70.6605},
	{Name: "Rondizzoni", Line: "L2", Latitude: -33.4710, Longitude: -70.6600},
	{Name: "Franklin", Line: "L2", Latitude: -33.4790, Longitude: -70.6590},
	{Name: "El Llano", Line: "L2", Latitude: -33.4890, Longitude: -70.6575},
	{Name: "San Miguel", Line: "L2", Latitude: -33.4970, Longitude: -70.6555},
	{Name: "Departamental", Line: "L2", Latitude: -33.5070, Longitude: -70.6520},
	{Name: "Ciudad del Niño", Line: "L2", Latitude: -33.5150, Longitude: -70.6485},
	{Name: "Lo Ovalle", Line: "L2", Latitude: -33.5233, Longitude: -70.6450},
	{Name: "El Parrón", Line: "L2", Latitude: -33.5310, Longitude: -70.6435},
	{Name: "La Cisterna", Line: "L2", Latitude: -33.5390, Longitude: -70.6590},

	// Line 3 — Los Libertadores to Fernando Castillo Velasco
	{Name: "Los Libertadores", Line: "L3", Latitude: -33.3756, Longitude: -70.6585},
	{Name: "Cardenal Caro", Line: "L3", Latitude: -33.3830, Longitude: -70.6567},
	{Name: "Vivaceta", Line: "L3", Latitude: -33.3975, Longitude: -70.6545},
	{Name: "Conchalí", Line: "L3", Latitude: -33.4030, Longitude: -70.6520},
	{Name: "Plaza Chacabuco", Line: "L3", Latitude: -33.4195, Longitude: -70.6480},
	{Name: "Hospitales", Line: "L3", Latitude: -33.4295, Longitude: -70.6480},
	{Name: "Cal y Canto", Line: "L3", Latitude: -33.4333, Longitude: -70.6440},
	{Name: "Plaza de Armas", Line: "L3", Latitude: -33.4380, Longitude: -70.6505},
	{Name: "Universidad de Chile (L3)", Line: "L3", Latitude: -33.4432, Longitude: -70.6536},
	{Name: "Parque Almagro", Line: "L3", Latitude: -33.4498, Longitude: -70.6485},
	{Name: "Matta", Line: "L3", Latitude: -33.4595, Longitude: -70.6395},
	{Name: "Irarrázaval", Line: "L3", Latitude: -33.4535, Longitude: -70.6130},
	{Name: "Monseñor Eyzaguirre", Line: "L3", Latitude: -33.4545, Longitude: -70.5985},
	{Name: "Ñuñoa", Line: "L3", Latitude: -33.4555, Longitude: -70.5940},
	{Name: "Chile España", Line: "L3", Latitude: -33.4555, Longitude: -70.5830},
	{Name: "Villa Frei", Line: "L3", Latitude: -33.4590, Longitude: -70.5725},
	{Name: "Plaza Egaña", Line: "L3", Latitude: -33.4545, Longitude: -70.5683},
	{Name: "Fernando Castillo Velasco", Line: "L3", Latitude: -33.4535, Longitude: -70.5540},

	// Line 4 — Tobalaba to Plaza de Puente Alto
	{Name: "Tobalaba (L4)", Line: "L4", Latitude: -33.4187, Longitude: -70.5893},
	{Name: "Cristóbal Colón", Line: "L4", Latitude: -33.4265, Longitude: -70.5810},
	{Name: "Francisco Bilbao", Line: "L4", Latitude: -33.4380, Longitude: -70.5795},
	{Name: "Príncipe de Gales", Line: "L4", Latitude: -33.4470, Longitude: -70.5780},
	{Name: "Simón Bolívar", Line: "L4", Latitude: -33.4515, Longitude: -70.5760},
	{Name: "Grecia", Line: "L4", Latitude: -33.4590, Longitude: -70.5720},
	{Name: "Los Orientales", Line: "L4", Latitude: -33.4695, Longitude: -70.5665},
	{Name: "Quilín", Line: "L4", Latitude: -33.4895, Longitude: -70.5605},
	{Name: "Las Torres", Line: "L4", Latitude: -33.5010, Longitude: -70.5572},
	{Name: "Macul", Line: "L4", Latitude: -33.5115, Longitude: -70.5545},
	{Name: "Vicuña Mackenna", Line: "L4", Latitude: -33.5275, Longitude: -70.5905},
	{Name: "Vicente Valdés", Line: "L4", Latitude: -33.5380, Longitude: -70.5950},
	{Name: "Rojas Magallanes", Line: "L4", Latitude: -33.5485, Longitude: -70.5995},
	{Name: "Trinidad", Line: "L4", Latitude: -33.5590, Longitude: -70.6020},
	{Name: "San José de la Estrella", Line: "L4", Latitude: -33.5705, Longitude: -70.6050},
	{Name: "Los Quillayes", Line: "L4", Latitude: -33.5840, Longitude: -70.6075},
	{Name: "Elisa Correa", Line: "L4", Latitude: -33.5955, Longitude: -70.6035},
	{Name: "Hospital Sótero del Río", Line: "L4", Latitude: -33.6085, Longitude: -70.5975},
	{Name: "Protectora de la Infancia", Line: "L4", Latitude: -33.6195, Longitude: -70.5920},
	{Name: "Las Mercedes", Line: "L4", Latitude: -33.6295, Longitude: -70.5865},
	{Name: "Plaza de Puente Alto", Line: "L4", Latitude: -33.6100, Longitude: -70.5770},

	// Line 4A — Vicuña Mackenna to La Cisterna
	{Name: "Vicuña Mackenna (4A)", Line: "L4A", Latitude: -33.5275, Longitude: -70.5905},
	{Name: "Los Presidentes", Line: "L4A", Latitude: -33.5275, Longitude: -70.6100},
	{Name: "Quilín (4A)", Line: "L4A", Latitude: -33.5245, Longitude: -70.6280},
	{Name: "Santa Julia", Line: "L4A", Latitude: -33.5240, Longitude: -70.6430},
	{Name: "La Granja", Line: "L4A", Latitude: -33.5350, Longitude: -70.6505},
	{Name: "Santa Rosa", Line: "L4A", Latitude: -33.5390, Longitude: -70.6590},
	{Name: "La Cisterna (4A)", Line: "L4A", Latitude: -33.5390, Longitude: -70.6590},

	// Line 5 — Plaza de Maipú to Vicente Valdés
	{Name: "Plaza de Maipú", Line: "L5", Latitude: -33.5098, Longitude: -70.7559},
	{Name: "Santiago Bueras (L5)", Line: "L5", Latitude: -33.4980, Longitude: -70.7445},
	{Name: "Del Sol (L5)", Line: "L5", Latitude: -33.4915, Longitude: -70.7350},
	{Name: "Monte Tabor (L5)", Line: "L5", Latitude: -33.4845, Longitude: -70.7248},
	{Name: "Laguna Sur", Line: "L5", Latitude: -33.4769, Longitude: -70.7152},
	{Name: "Barrancas", Line: "L5", Latitude: -33.4720, Longitude: -70.7040},
	{Name: "Pudahuel", Line: "L5", Latitude: -33.4635, Longitude: -70.6880},
	{Name: "San Pablo (L5)", Line: "L5", Latitude: -33.4490, Longitude: -70.6740},
	{Name: "Lo Prado", Line: "L5", Latitude: -33.4440, Longitude: -70.6655},
	{Name: "Blanqueado", Line: "L5", Latitude: -33.4420, Longitude: -70.6560},
	{Name: "Gruta de Lourdes", Line: "L5", Latitude: -33.4420, Longitude: -70.6475},
	{Name: "Quinta Normal", Line: "L5", Latitude: -33.4390, Longitude: -70.6585},
	{Name: "Cumming", Line: "L5", Latitude: -33.4408, Longitude: -70.6525},
	{Name: "Santa Ana (L5)", Line: "L5", Latitude: -33.4409, Longitude: -70.6505},
	{Name: "Plaza de Armas (L5)", Line: "L5", Latitude: -33.4380, Longitude: -70.6505},
	{Name: "Bellas Artes", Line: "L5", Latitude: -33.4365, Longitude: -70.6425},
	{Name: "Baquedano (L5)", Line: "L5", Latitude: -33.4375, Longitude: -70.6350},
	{Name: "Parque Bustamante", Line: "L5", Latitude: -33.4425, Longitude: -70.6275},
	{Name: "Santa Isabel", Line: "L5", Latitude: -33.4520, Longitude: -70.6240},
	{Name: "Ñuble", Line: "L5", Latitude: -33.4615, Longitude: -70.6195},
	{Name: "Rodrigo de Araya", Line: "L5", Latitude: -33.4732, Longitude: -70.6115},
	{Name: "Carlos Valdovinos", Line: "L5", Latitude: -33.4835, Longitude: -70.6050},
	{Name: "Camino Agrícola", Line: "L5", Latitude: -33.4930, Longitude: -70.5990},
	{Name: "San Joaquín", Line: "L5", Latitude: -33.4960, Longitude: -70.6213},
	{Name: "Pedrero", Line: "L5", Latitude: -33.5010, Longitude: -70.6175},
	{Name: "Mirador", Line: "L5", Latitude: -33.5085, Longitude: -70.6115},
	{Name: "Bellavista de La Florida", Line: "L5", Latitude: -33.5180, Longitude: -70.6030},
	{Name: "Vicente Valdés (L5)", Line: "L5", Latitude: -33.5380, Longitude: -70.5950},

	// Line 6 — Cerrillos to Los Leones
	{Name: "Cerrillos", Line: "L6", Latitude: -33.4930, Longitude: -70.7140},
	{Name: "Lo Valledor", Line: "L6", Latitude: -33.4790, Longitude: -70.6905},
	{Name: "Pedro Aguirre Cerda", Line: "L6", Latitude: -33.4720, Longitude: -70.6760},
	{Name: "Franklin (L6)", Line: "L6", Latitude: -33.4680, Longitude: -70.6635},
	{Name: "Bio Bío", Line: "L6", Latitude: -33.4595, Longitude: -70.6515},
	{Name: "Ñuñoa (L6)", Line: "L6", Latitude: -33.4535, Longitude: -70.6125},
	{Name: "Estadio Nacional", Line: "L6", Latitude: -33.4620, Longitude: -70.6065},
	{Name: "Ñuble (L6)", Line: "L6", Latitude: -33.4615, Longitude: -70.6195},
	{Name: "Inés de Suárez", Line: "L6", Latitude: -33.4350, Longitude: -70.6015},
	{Name: "Los Leones (L6)", Line: "L6", Latitude: -33.4230, Longitude: -70.5982},

	// Line 7 — confirmed / under construction
	{Name: "Renca", Line: "L7", Latitude: -33.4095, Longitude: -70.7245},
	{Name: "Cerro Navia", Line: "L7", Latitude: -33.4220, Longitude: -70.7200},
	{Name: "Quinta Normal (L7)", Line: "L7", Latitude: -33.4345, Longitude: -70.6975},
	{Name: "Brasil", Line: "L7", Latitude: -33.4420, Longitude: -70.6625},
	{Name: "Cumming (L7)", Line: "L7", Latitude: -33.4430, Longitude: -70.6535},
	{Name: "Irarrázaval (L7)", Line: "L7", Latitude: -33.4450, Longitude: -70.6245},
	{Name: "Ñuñoa (L7)", Line: "L7", Latitude: -33.4535, Longitude: -70.5995},
	{Name: "Vitacura", Line: "L7", Latitude: -33.3975, Longitude: -70.5795},
	{Name: "Estoril", Line: "L7", Latitude: -33.3895, Longitude: -70.5675},
}

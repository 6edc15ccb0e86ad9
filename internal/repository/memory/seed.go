package memory

import "github.com/fleet-backend/internal/domain"

// demoDrivers - демонстрационный состав для запуска без базы данных
var demoDrivers = []domain.Driver{
	{ID: 1, Username: "ivan.petrov", FullName: "Иван Петров", PlateNo: "B 1234 CH", Phone: "+34 600 111 222", Active: true},
	{ID: 2, Username: "maria.gomez", FullName: "Maria Gomez", PlateNo: "B 5678 KL", Phone: "+34 600 333 444", Active: true},
	{ID: 3, Username: "oleg.smirnov", FullName: "Олег Смирнов", PlateNo: "B 9012 MN", Active: true},
}

// SeedDemoDrivers наполняет реестр демонстрационными водителями.
// Вызывается при старте без DB_HOST: иначе dev-режим отклонял бы каждую
// позицию и сообщение с DRIVER_NOT_FOUND.
func SeedDemoDrivers(repo *DriverRepository) int {
	for _, d := range demoDrivers {
		repo.Put(d)
	}
	return len(demoDrivers)
}

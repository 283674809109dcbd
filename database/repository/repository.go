package repository

import (
	assignmentRepo "fixel/database/repository/assignment"
	bookingRepo "fixel/database/repository/booking"
	notificationRepo "fixel/database/repository/notification"
	offerRepo "fixel/database/repository/offer"
	serviceRepo "fixel/database/repository/service"
	technicianRepo "fixel/database/repository/technician"
	userRepo "fixel/database/repository/user"
)

// Re-export the per-entity repository interfaces and constructors.

type BookingRepository = bookingRepo.BookingRepository

var NewMongoBookingRepo = bookingRepo.NewMongoBookingRepo

type ServiceRepository = serviceRepo.ServiceRepository

var NewMongoServiceRepo = serviceRepo.NewMongoServiceRepo

type TechnicianRepository = technicianRepo.TechnicianRepository

var NewMongoTechnicianRepo = technicianRepo.NewMongoTechnicianRepo

type OfferRepository = offerRepo.OfferRepository

var NewMongoOfferRepo = offerRepo.NewMongoOfferRepo

type AssignmentRepository = assignmentRepo.AssignmentRepository

var NewMongoAssignmentRepo = assignmentRepo.NewMongoAssignmentRepo

type UserRepository = userRepo.UserRepository

var NewMongoUserRepo = userRepo.NewMongoUserRepo

type NotificationRepository = notificationRepo.NotificationRepository

var NewMongoNotificationRepo = notificationRepo.NewMongoNotificationRepo

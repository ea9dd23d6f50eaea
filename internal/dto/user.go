package dto

import (
	md "github.com/medicard/backend/internal/models"
)

type PaginatedUserResponse struct {
	Data        []*md.User `json:"data"`
	Count       int64      `json:"count"`
	TotalPages  int        `json:"totalPages"`
	CurrentPage int        `json:"currentPage"`
	HasNextPage bool       `json:"hasNextPage"`
}

type RegisterUserRequest struct {
	Email        string  `json:"email"          validate:"required,email"`
	Password     string  `json:"password"       validate:"required"`
	Pesel        string  `json:"pesel"          validate:"required"`
	Role         md.Role `json:"role"`
	FirstName    string  `json:"first_name"     validate:"required"`
	SecondName   string  `json:"second_name"`
	LastName     string  `json:"last_name"      validate:"required"`
	MotherName   string  `json:"mother_name"`
	FatherName   string  `json:"father_name"`
	Gender       string  `json:"gender"`
	Height       int     `json:"height"`
	DateOfBirth  string  `json:"date_of_birth"`
	PlaceOfBirth string  `json:"place_of_birth"`
	Address      string  `json:"address"`
}

type UserProfileResponse struct {
	Email        string `json:"email"`
	Pesel        string `json:"pesel"`
	FirstName    string `json:"first_name"`
	SecondName   string `json:"second_name"`
	LastName     string `json:"last_name"`
	MotherName   string `json:"mother_name"`
	FatherName   string `json:"father_name"`
	Gender       string `json:"gender"`
	Height       int    `json:"height"`
	DateOfBirth  string `json:"date_of_birth"`
	PlaceOfBirth string `json:"place_of_birth"`
	Address      string `json:"address"`
}

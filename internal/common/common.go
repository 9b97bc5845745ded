package common

const ApplicationName = "reg-ukrpay-service"
